package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/admin"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/config"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/dashboard"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/hotline"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/resources"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/simulator"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/wellness"
)

func TestCheckIn_Scores(t *testing.T) {
	report, err := checkIn(wellness.Submission{
		Feelings:     "I feel happy and calm",
		SleepQuality: 8,
		StressLevel:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 70, report.Score)
	assert.Equal(t, wellness.CategoryWell, report.Category)
	assert.False(t, report.Crisis)
	assert.Empty(t, report.Hotlines)
}

func TestCheckIn_CrisisAttachesHotlines(t *testing.T) {
	report, err := checkIn(wellness.Submission{
		Feelings:     "I feel hopeless and alone",
		SleepQuality: 2,
		StressLevel:  9,
	})
	require.NoError(t, err)
	assert.True(t, report.Crisis)
	assert.Equal(t, []string{"hopeless", "alone"}, report.CrisisPhrases)
	assert.Equal(t, hotline.Numbers(), report.Hotlines)
	assert.Equal(t, wellness.CategorySupport, report.Category)
}

func TestCheckIn_ValidationError(t *testing.T) {
	_, err := checkIn(wellness.Submission{Feelings: "ok", SleepQuality: 0, StressLevel: 11})

	var verr *wellness.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "feelings")
	assert.Contains(t, verr.Fields, "sleep_quality")
	assert.Contains(t, verr.Fields, "stress_level")

	var buf bytes.Buffer
	renderValidation(&buf, verr)
	out := buf.String()
	assert.Less(t, strings.Index(out, "feelings"), strings.Index(out, "sleep_quality"))
	assert.Less(t, strings.Index(out, "sleep_quality"), strings.Index(out, "stress_level"))
}

func TestWellnessRatingsRequired(t *testing.T) {
	for _, name := range []string{"sleep", "stress"} {
		f := wellnessCmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "0", f.DefValue, name)
	}

	_, err := checkIn(wellness.Submission{Feelings: "feeling fine today"})
	var verr *wellness.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "sleep_quality")
	assert.Contains(t, verr.Fields, "stress_level")
	assert.NotContains(t, verr.Fields, "feelings")
}

func TestRenderWellness(t *testing.T) {
	report, err := checkIn(wellness.Submission{
		Name:         "Mwila",
		Feelings:     "I want to end it all",
		SleepQuality: 3,
		StressLevel:  9,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	renderWellness(&buf, "Mwila", report)
	out := buf.String()

	assert.Contains(t, out, "Mwila, here is your wellness score")
	assert.Contains(t, out, report.Category)
	for _, tip := range report.Tips {
		assert.Contains(t, out, tip)
	}
	assert.Contains(t, out, "Zambia Mental Health Helpline")
}

func TestRenderAnalysis(t *testing.T) {
	a := sentiment.NewTagger(sentiment.Conversation).Analyze("Feeling hopeless and sad today")

	var buf bytes.Buffer
	renderAnalysis(&buf, "conversation", a)
	out := buf.String()

	assert.Contains(t, out, "Negative")
	assert.Contains(t, out, "hopeless, sad")
	assert.Contains(t, out, "Depression indicator:")
}

func TestReadAll_FromReader(t *testing.T) {
	got, err := readAll(strings.NewReader("one\ntwo"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", got)
}

func TestRenderResources(t *testing.T) {
	var buf bytes.Buffer
	renderResources(&buf, "kitwe", []resources.Resource{resources.Catalog()[3]})
	out := buf.String()
	assert.Contains(t, out, `matching "kitwe"`)
	assert.Contains(t, out, "Copperbelt Mental Wellness Center")
	assert.Contains(t, out, "Addiction services")
	assert.Contains(t, out, "1 provider(s)")

	buf.Reset()
	renderResources(&buf, "nothing", nil)
	assert.Contains(t, buf.String(), "No resources found")
}

func TestOpenDirectory_SeedsDatabase(t *testing.T) {
	cfg := &config.Config{Store: config.Store{Path: t.TempDir() + "/mindhub.db"}}

	dir, closeDir := openDirectory(t.Context(), cfg)
	defer closeDir()

	got, err := dir.Tab(t.Context(), resources.TabHospital, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRenderDashboard(t *testing.T) {
	snap, err := dashboard.Build(t.Context(), 42, dashboard.Week)
	require.NoError(t, err)

	var buf bytes.Buffer
	renderDashboard(&buf, snap, "lusaka", 5, 80)
	out := buf.String()

	assert.Contains(t, out, "seed 42")
	assert.Contains(t, out, dashboard.Banner)
	assert.Contains(t, out, "Anxiety")
	assert.Contains(t, out, "▶ Lusaka")
	for _, p := range snap.Sentiment {
		assert.Contains(t, out, p.Name)
	}
}

func TestRenderHotlines(t *testing.T) {
	var buf bytes.Buffer
	renderHotlines(&buf, hotline.Numbers())
	assert.Contains(t, buf.String(), "116")
	assert.Contains(t, buf.String(), `Text "HELP" to 5011`)
}

func TestRenderOverview(t *testing.T) {
	var buf bytes.Buffer
	renderOverview(&buf, admin.Feed())
	out := buf.String()

	assert.Contains(t, out, "Total Reports")
	assert.Contains(t, out, "Suicide-related terms spike in Southern Province")
	assert.Contains(t, out, "Community Forums")
	assert.Contains(t, out, "Weekly Sentiment Report")
}

func TestSignIn(t *testing.T) {
	cfg := &config.Config{Admin: config.Admin{Username: "admin", Password: "secret"}}
	defer func() { adminUsername, adminPassword = "", "" }()

	run := func(stdin string) error {
		cmd := &cobra.Command{}
		cmd.SetIn(strings.NewReader(stdin))
		cmd.SetErr(&bytes.Buffer{})
		return signIn(cmd, cfg)
	}

	adminUsername, adminPassword = "admin", "secret"
	assert.NoError(t, run(""))

	adminUsername, adminPassword = "admin", "wrong"
	assert.ErrorIs(t, run(""), admin.ErrInvalidCredentials)

	adminUsername, adminPassword = "", ""
	assert.NoError(t, run("admin\nsecret\n"))
}

func TestPrintAlert(t *testing.T) {
	var buf bytes.Buffer
	printAlert(&buf, simulator.Alert{
		Level:   simulator.LevelCritical,
		Title:   "Depression warning",
		Message: "I feel hopeless (matched: hopeless)",
		Time:    time.Date(2025, 5, 1, 14, 3, 9, 0, time.UTC),
	})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[14:03:09] "+alertIcon(simulator.LevelCritical)))
	assert.Contains(t, out, "matched: hopeless")
}

func TestTickN(t *testing.T) {
	var seen int
	sim := simulator.New(simulator.Options{
		Seed:      5,
		Interval:  time.Hour,
		OnMessage: func(simulator.Message) { seen++ },
	})

	assert.Equal(t, 20, tickN(t.Context(), sim, 20))
	assert.Equal(t, 20, seen)
	assert.Len(t, sim.Messages(), 20)
	assert.Equal(t, simulator.Idle, sim.State())
}

func TestTickN_StopsOnCancel(t *testing.T) {
	sim := simulator.New(simulator.Options{Seed: 5})
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	assert.Equal(t, 0, tickN(ctx, sim, 10))
	assert.Empty(t, sim.Messages())
}

func TestSentimentTally(t *testing.T) {
	msgs := []simulator.Message{
		{Sentiment: sentiment.Positive},
		{Sentiment: sentiment.Negative},
		{Sentiment: sentiment.Negative},
	}
	tally := sentimentTally(msgs)
	assert.Equal(t, 1, tally[sentiment.Positive])
	assert.Equal(t, 2, tally[sentiment.Negative])
	assert.Equal(t, 0, tally[sentiment.Neutral])
}

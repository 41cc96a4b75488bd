package simulator

import "github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"

// pools holds the canned sentences the simulator draws from, keyed by the
// tone they were written in.
var pools = map[sentiment.Label][]string{
	sentiment.Positive: {
		"I'm feeling better today after talking with my therapist.",
		"I managed to accomplish all my tasks today, feeling proud.",
		"The meditation exercises are really helping me focus.",
		"I've been connecting more with my friends lately.",
		"I found a new hobby that brings me joy.",
	},
	sentiment.Negative: {
		"I couldn't get out of bed again today.",
		"Nothing seems to matter anymore.",
		"I feel like I'm a burden to everyone around me.",
		"I haven't been able to sleep properly for weeks.",
		"Everything feels overwhelming and hopeless.",
	},
	sentiment.Neutral: {
		"I went to the market today.",
		"The weather is changing.",
		"I watched a documentary last night.",
		"I need to schedule my next appointment.",
		"Just checking in as requested.",
	},
}

// poolOrder fixes iteration order so a seeded run is reproducible.
var poolOrder = []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Neutral}

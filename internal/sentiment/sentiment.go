package sentiment

import (
	"math"

	"github.com/jonreiter/govader"
)

type Mood string

const (
	Radiant     Mood = "Radiant"
	Optimistic  Mood = "Optimistic"
	Reflective  Mood = "Reflective"
	Melancholic Mood = "Melancholic"
	Desolate    Mood = "Desolate"
)

// Scorer rates text on a polarity scale from -1 (negative) to 1 (positive).
type Scorer interface {
	Polarity(text string) float64
}

// MoodFor maps a polarity score to its mood band. Bands are checked from the top
// with strict comparisons, so a score sitting exactly on a threshold lands in the
// band below it.
func MoodFor(polarity float64) Mood {
	switch {
	case polarity > 0.5:
		return Radiant
	case polarity > 0.1:
		return Optimistic
	case polarity > -0.1:
		return Reflective
	case polarity > -0.5:
		return Melancholic
	default:
		return Desolate
	}
}

type Classifier struct {
	scorer Scorer
}

func NewClassifier(scorer Scorer) *Classifier {
	return &Classifier{
		scorer: scorer,
	}
}

// Classify scores content and returns its mood.
func (c *Classifier) Classify(content string) string {
	polarity := c.scorer.Polarity(content)
	if math.IsNaN(polarity) {
		polarity = 0
	} else if polarity > 1 {
		polarity = 1
	} else if polarity < -1 {
		polarity = -1
	}

	return string(MoodFor(polarity))
}

// VaderScorer scores text with the VADER lexicon; its compound score is already
// normalised to [-1, 1].
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (v *VaderScorer) Polarity(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

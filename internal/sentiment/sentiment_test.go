package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	class     uint8
	p         float64
	predicted uint8
}

func (s stubClassifier) Predict(string) uint8 { return s.predicted }

func (s stubClassifier) Probability(string) (uint8, float64) { return s.class, s.p }

func TestAnalyze_Labels(t *testing.T) {
	tests := []struct {
		name       string
		classifier stubClassifier
		want       string
	}{
		{name: "positive", classifier: stubClassifier{class: 1, p: 0.9}, want: Positive},
		{name: "negative", classifier: stubClassifier{class: 0, p: 0.8}, want: Negative},
		{name: "low confidence", classifier: stubClassifier{class: 1, p: 0.55}, want: Neutral},
		{name: "threshold", classifier: stubClassifier{class: 0, p: DefaultMinConfidence}, want: Negative},
		{name: "underflow uses predict", classifier: stubClassifier{class: 0, p: math.NaN(), predicted: 1}, want: Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzerWithClassifier(tt.classifier)
			assert.Equal(t, tt.want, a.Analyze("dinner at the corner place").Sentiment)
		})
	}
}

func TestAnalyze_EmptyIsNeutral(t *testing.T) {
	a := NewAnalyzerWithClassifier(stubClassifier{class: 1, p: 1})

	for _, text := range []string{"", "   ", "!!! ..."} {
		res := a.Analyze(text)
		assert.Equal(t, Neutral, res.Sentiment, "text=%q", text)
		assert.NotNil(t, res.Keywords)
		assert.Empty(t, res.Keywords)
	}
}

func TestAnalyze_PretrainedModel(t *testing.T) {
	a, err := NewAnalyzer()
	require.NoError(t, err)

	assert.Equal(t, Positive, a.Analyze("Excellent food, wonderful service, we loved it").Sentiment)
	assert.Equal(t, Negative, a.Analyze("Terrible food, awful service, the worst").Sentiment)

	again, err := NewAnalyzer()
	require.NoError(t, err)
	assert.Equal(t, a.classifier, again.classifier)
}

func TestKeywords(t *testing.T) {
	a := NewAnalyzerWithClassifier(stubClassifier{class: 1, p: 0.9})

	res := a.Analyze("Paneer tikka, paneer curry and garlic naan. The naan was soft, the paneer fresh.")
	assert.Equal(t, []string{"paneer", "naan", "tikka"}, res.Keywords)

	res = a.Analyze("the and for")
	assert.Empty(t, res.Keywords)
	assert.NotNil(t, res.Keywords)

	res = a.Analyze("Bad service, bad dosa!")
	assert.Equal(t, []string{"bad", "service", "dosa"}, res.Keywords)
}

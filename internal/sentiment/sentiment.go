package sentiment

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	nb "github.com/cdipaolo/sentiment"
	"github.com/jdkato/prose/v2"
)

// 感情ラベル
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

const (
	// DefaultKeywordCount 抽出するキーワード数
	DefaultKeywordCount = 3
	// DefaultMinConfidence これ未満の確信度は中立とみなす
	DefaultMinConfidence = 0.65
)

// Result 解析結果
type Result struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"-"`
	Keywords  []string `json:"keywords"`
}

// Classifier 文を肯定(1)・否定(0)に分類するモデル
type Classifier interface {
	Predict(sentence string) uint8
	Probability(sentence string) (uint8, float64)
}

var (
	modelOnce sync.Once
	models    nb.Models
	modelErr  error
)

// restoreModels 学習済みモデルを一度だけ復元する
func restoreModels() (nb.Models, error) {
	modelOnce.Do(func() {
		models, modelErr = nb.Restore()
	})
	return models, modelErr
}

// Analyzer 学習済みモデルによる感情解析器
type Analyzer struct {
	classifier    Classifier
	stopwords     map[string]struct{}
	keywordCount  int
	minConfidence float64
}

// NewAnalyzer 組み込みの英語モデルで Analyzer を作成
func NewAnalyzer() (*Analyzer, error) {
	m, err := restoreModels()
	if err != nil {
		return nil, fmt.Errorf("感情モデルの復元に失敗しました: %w", err)
	}
	english, ok := m[nb.English]
	if !ok || english == nil {
		return nil, errors.New("英語の感情モデルがありません")
	}
	return NewAnalyzerWithClassifier(english), nil
}

// NewAnalyzerWithClassifier 任意の分類器で Analyzer を作成
func NewAnalyzerWithClassifier(classifier Classifier) *Analyzer {
	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stop[w] = struct{}{}
	}
	return &Analyzer{
		classifier:    classifier,
		stopwords:     stop,
		keywordCount:  DefaultKeywordCount,
		minConfidence: DefaultMinConfidence,
	}
}

// Analyze テキストの極性とキーワードを求める
func (a *Analyzer) Analyze(text string) Result {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Result{Sentiment: Neutral, Keywords: []string{}}
	}

	score := a.Polarity(text)
	label := Neutral
	switch {
	case score >= a.minConfidence:
		label = Positive
	case score <= -a.minConfidence:
		label = Negative
	}

	return Result{
		Sentiment: label,
		Score:     score,
		Keywords:  a.Keywords(tokens),
	}
}

// Polarity 分類結果を -1 から 1 の値で返す (符号がクラス、絶対値が確信度)
// 長文で確率が計算できない場合は分類結果だけを使う
func (a *Analyzer) Polarity(text string) float64 {
	class, p := a.classifier.Probability(text)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		class, p = a.classifier.Predict(text), 1
	}
	if class == 1 {
		return p
	}
	return -p
}

// Keywords 出現頻度の高い順にキーワードを返す (同数は先に出た語を優先)
func (a *Analyzer) Keywords(tokens []string) []string {
	type term struct {
		word  string
		count int
		first int
	}

	index := make(map[string]int)
	var terms []term
	for i, tok := range tokens {
		if len([]rune(tok)) < 3 {
			continue
		}
		if _, ok := a.stopwords[tok]; ok {
			continue
		}
		if j, ok := index[tok]; ok {
			terms[j].count++
			continue
		}
		index[tok] = len(terms)
		terms = append(terms, term{word: tok, count: 1, first: i})
	}

	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].count != terms[j].count {
			return terms[i].count > terms[j].count
		}
		return terms[i].first < terms[j].first
	})

	keywords := make([]string, 0, a.keywordCount)
	for _, t := range terms {
		if len(keywords) == a.keywordCount {
			break
		}
		keywords = append(keywords, t.word)
	}
	return keywords
}

// tokenize proseで単語に分割し、英数字だけからなる語を小文字で返す
func tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if isWord(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

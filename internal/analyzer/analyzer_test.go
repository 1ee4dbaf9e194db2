package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/moodlens/moodlens/internal/generation"
	"github.com/moodlens/moodlens/internal/models"
	"github.com/moodlens/moodlens/internal/sentiment"
)

// fakeGenerator replies per prompt kind: analysis prompts get analysisReply,
// word prompts get wordsReply. A non-nil err fails every call.
type fakeGenerator struct {
	analysisReply string
	wordsReply    string
	err           error
	calls         int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string, _ generation.ResponseFormat) (generation.Result, error) {
	f.calls++
	if f.err != nil {
		return generation.Result{}, f.err
	}
	reply := f.analysisReply
	if strings.Contains(prompt, "emotionally significant") {
		reply = f.wordsReply
	}
	return generation.Result{Content: json.RawMessage(reply), RawContent: reply}, nil
}

const validAnalysisReply = `{
	"score": -0.6,
	"level": "moderate",
	"emotions": {"joy": 0.05, "sadness": 0.4, "anger": 0.1, "fear": 0.3, "love": 0.05, "surprise": 0.1}
}`

func TestService_Analyze_UsesRemoteResult(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		analysisReply: validAnalysisReply,
		wordsReply:    `["overwhelmed", "deadline"]`,
	}
	svc := NewService(NewRemoteAnalyzer(gen), nil)

	res := svc.Analyze(context.Background(), "everything is piling up and I feel overwhelmed")
	if res.Level != models.StressModerate {
		t.Fatalf("level = %q, want moderate", res.Level)
	}
	if res.Score != -0.6 {
		t.Fatalf("score = %v, want -0.6", res.Score)
	}
	if want := []string{"overwhelmed", "deadline"}; !reflect.DeepEqual(res.ImportantWords, want) {
		t.Fatalf("important words = %v, want %v", res.ImportantWords, want)
	}
}

func TestService_Analyze_FallsBackOnNetworkError(t *testing.T) {
	t.Parallel()

	text := "I am scared and anxious, everything feels like a disaster and I'm furious"
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := NewService(NewRemoteAnalyzer(gen), nil)

	res := svc.Analyze(context.Background(), text)
	if !reflect.DeepEqual(res, sentiment.Analyze(text)) {
		t.Fatalf("fallback result does not match local analyzer: %+v", res)
	}
}

func TestService_Analyze_FallsBackOnMalformedPayload(t *testing.T) {
	t.Parallel()

	payloads := []string{
		`not json at all`,
		`{"level": "moderate", "emotions": {"joy": 1, "sadness": 0, "anger": 0, "fear": 0, "love": 0, "surprise": 0}}`,
		`{"score": 0.2, "level": "catastrophic", "emotions": {"joy": 1, "sadness": 0, "anger": 0, "fear": 0, "love": 0, "surprise": 0}}`,
		`{"score": 0.2, "level": "mild", "emotions": {"joy": 1, "sadness": 0, "anger": 0, "fear": 0, "love": 0}}`,
		`{"score": 0.2, "level": "mild", "emotions": {"joy": 3, "sadness": 1, "anger": 0, "fear": 0, "love": 0, "surprise": 0}}`,
		`{"score": 7, "level": "mild", "emotions": {"joy": 1, "sadness": 0, "anger": 0, "fear": 0, "love": 0, "surprise": 0}}`,
	}

	text := "I am so happy and excited today, everything is wonderful!"
	want := sentiment.Analyze(text)

	for _, payload := range payloads {
		gen := &fakeGenerator{analysisReply: payload, wordsReply: `[]`}
		svc := NewService(NewRemoteAnalyzer(gen), nil)

		res := svc.Analyze(context.Background(), text)
		if !reflect.DeepEqual(res, want) {
			t.Fatalf("payload %q: expected local fallback result, got %+v", payload, res)
		}
	}
}

func TestService_Analyze_LocalOnlyWithoutRemote(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil)
	text := "feeling glad and warm today"
	if res := svc.Analyze(context.Background(), text); !reflect.DeepEqual(res, sentiment.Analyze(text)) {
		t.Fatalf("local-only service diverged from local analyzer: %+v", res)
	}
}

func TestRemoteAnalyzer_NormalizesWithinTolerance(t *testing.T) {
	t.Parallel()

	// Sums to 1.1: inside tolerance, should be renormalized to 1.0.
	gen := &fakeGenerator{
		analysisReply: `{"score": 0.5, "level": "mild", "emotions": {"joy": 0.6, "sadness": 0.1, "anger": 0.1, "fear": 0.1, "love": 0.1, "surprise": 0.1}}`,
		wordsReply:    `[]`,
	}
	res, err := NewRemoteAnalyzer(gen).Analyze(context.Background(), "pretty good day overall")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum := res.Emotions.Sum(); sum < 1-1e-9 || sum > 1+1e-9 {
		t.Fatalf("emotion sum = %v, want 1.0", sum)
	}
}

func TestRemoteAnalyzer_WordFailureDoesNotRejectAnalysis(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{analysisReply: validAnalysisReply, wordsReply: `"just a string"`}
	res, err := NewRemoteAnalyzer(gen).Analyze(context.Background(), "long difficult week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.ImportantWords) != 0 {
		t.Fatalf("important words = %v, want none", res.ImportantWords)
	}
}

type stubCache struct {
	stored map[string]models.SentimentResult
}

func (c *stubCache) Get(_ context.Context, key string) (models.SentimentResult, bool) {
	res, ok := c.stored[key]
	return res, ok
}

func (c *stubCache) Store(_ context.Context, key string, res models.SentimentResult) {
	c.stored[key] = res
}

func TestService_Analyze_CachesRemoteResults(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{analysisReply: validAnalysisReply, wordsReply: `["tired"]`}
	cache := &stubCache{stored: make(map[string]models.SentimentResult)}
	svc := NewService(NewRemoteAnalyzer(gen), cache)

	first := svc.Analyze(context.Background(), "really tired of all this")
	callsAfterFirst := gen.calls
	second := svc.Analyze(context.Background(), "really tired of all this")

	if gen.calls != callsAfterFirst {
		t.Fatalf("cache hit still called the generator (%d -> %d calls)", callsAfterFirst, gen.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached result differs: %+v vs %+v", first, second)
	}
}

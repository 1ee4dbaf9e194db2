package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/moodlens/moodlens/internal/generation"
	"github.com/moodlens/moodlens/internal/models"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) GenerateContent(context.Context, string, generation.ResponseFormat) (generation.Result, error) {
	if f.err != nil {
		return generation.Result{}, f.err
	}
	return generation.Result{Content: json.RawMessage(f.reply), RawContent: f.reply}, nil
}

func TestRecommend_StaticWithoutText(t *testing.T) {
	t.Parallel()

	sel := NewSelector(&fakeGenerator{reply: `["should not be used"]`})
	got := sel.Recommend(context.Background(), models.StressSevere, "")

	if !reflect.DeepEqual(got, Static(models.StressSevere)) {
		t.Fatalf("got %v, want the static severe table", got)
	}
	if len(got) != 5 {
		t.Fatalf("static table has %d items, want 5", len(got))
	}
}

func TestRecommend_PersonalizedAccepted(t *testing.T) {
	t.Parallel()

	sel := NewSelector(&fakeGenerator{reply: `["rest", "hydrate", "call a friend"]`})
	got := sel.Recommend(context.Background(), models.StressModerate, "rough day at work")

	want := []string{"rest", "hydrate", "call a friend"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRecommend_UndersizedReplyFallsBack(t *testing.T) {
	t.Parallel()

	sel := NewSelector(&fakeGenerator{reply: `["rest", "hydrate"]`})
	got := sel.Recommend(context.Background(), models.StressMild, "fine day mostly")

	if !reflect.DeepEqual(got, Static(models.StressMild)) {
		t.Fatalf("got %v, want the static mild table", got)
	}
}

func TestRecommend_GeneratorErrorFallsBack(t *testing.T) {
	t.Parallel()

	sel := NewSelector(&fakeGenerator{err: errors.New("timeout")})
	got := sel.Recommend(context.Background(), models.StressSevere, "panicking about everything")

	if !reflect.DeepEqual(got, Static(models.StressSevere)) {
		t.Fatalf("got %v, want the static severe table", got)
	}
}

func TestRecommend_CapsAtFive(t *testing.T) {
	t.Parallel()

	sel := NewSelector(&fakeGenerator{reply: `["a", "b", "c", "d", "e", "f", "g"]`})
	got := sel.Recommend(context.Background(), models.StressMild, "long rambling entry")

	if len(got) != 5 {
		t.Fatalf("got %d recommendations, want 5", len(got))
	}
}

func TestStatic_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Static(models.StressMild)
	first[0] = "mutated"
	if second := Static(models.StressMild); second[0] == "mutated" {
		t.Fatal("static table leaked a mutable reference")
	}
}

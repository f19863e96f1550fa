package translit

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		priority []string
		fallback []string
	}{
		{
			name:     "empty",
			query:    "",
			priority: []string{""},
			fallback: []string{},
		},
		{
			name:     "single word",
			query:    "транзистор",
			priority: []string{"транзистор", "tranzistor"},
			fallback: []string{"nhfypbcnjh"},
		},
		{
			name:     "part number anywhere suppresses fallback",
			query:    "транзистор 2n2222",
			priority: []string{"транзистор 2n2222", "tranzistor 2n2222"},
			fallback: []string{},
		},
		{
			name:     "each word rewritten separately",
			query:    "реле финдер",
			priority: []string{"реле финдер", "rele финдер", "реле finder"},
			fallback: []string{"htkt финдер", "реле abylth"},
		},
		{
			name:     "latin words not expanded",
			query:    "Finder relay",
			priority: []string{"Finder relay"},
			fallback: []string{},
		},
		{
			name:     "repeated word replaced once",
			query:    "реле реле",
			priority: []string{"реле реле", "rele реле"},
			fallback: []string{"htkt реле"},
		},
		{
			name:     "first textual match may be inside another word",
			query:    "котлета кот",
			priority: []string{"котлета кот", "kotleta кот", "kotлета кот"},
			fallback: []string{"rjnktnf кот", "rjnлета кот"},
		},
		{
			name:     "whitespace only",
			query:    "   ",
			priority: []string{"   "},
			fallback: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExpandQuery(tt.query)

			if diff := cmp.Diff(tt.priority, got.Priority, sortStrings); diff != "" {
				t.Errorf("priority mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.fallback, got.Fallback, sortStrings); diff != "" {
				t.Errorf("fallback mismatch (-want +got):\n%s", diff)
			}

			all := append(append([]string{}, tt.priority...), tt.fallback...)
			if diff := cmp.Diff(all, got.All, sortStrings); diff != "" {
				t.Errorf("all mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpandQuery_OriginalAlwaysFirst(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"", "реле", "AAPL", "ш170-25 реле"} {
		got := ExpandQuery(q)
		require.NotEmpty(t, got.Priority)
		assert.Equal(t, q, got.Priority[0])
		assert.Equal(t, q, got.All[0])
	}
}

func TestExpandQuery_TiersOverlapDeduplicatedInAll(t *testing.T) {
	t.Parallel()

	// "ъ" renders as "" semantically and "]" on the keyboard; neither
	// collides, but the original must appear once in All.
	got := ExpandQuery("ъ")
	assert.ElementsMatch(t, []string{"ъ", ""}, got.Priority)
	assert.ElementsMatch(t, []string{"]"}, got.Fallback)
	assert.Len(t, got.All, 3)
}

func TestExpansion_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ExpandQuery(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"priority_variants":[""],"fallback_variants":[],"all_variants":[""]}`, string(data))
}

func TestExpandQuery_Concurrent(t *testing.T) {
	t.Parallel()

	want := ExpandQuery("реле финдер")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := ExpandQuery("реле финдер")
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

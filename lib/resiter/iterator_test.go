package resiter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/ValentinKolb/rbundle/lib/bundle/loader"
	"github.com/VictoriaMetrics/metrics"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// visit is one recorded loop body invocation
type visit struct {
	Value string
	Index []int
}

func record(visits *[]visit) LoopBody {
	return func(value string, index []int) {
		*visits = append(*visits, visit{Value: value, Index: index})
	}
}

// newIterator registers dict as name in a memory loader and returns an iterator for it
func newIterator(t *testing.T, name string, dict bundle.Dictionary, opts *Options) *Iterator {
	t.Helper()
	l := loader.NewMemoryLoader()
	require.NoError(t, l.Put(name, dict))
	it, err := New(name, l, opts)
	require.NoError(t, err)
	return it
}

var sample = bundle.Dictionary{
	"hello_0":      "good bye",
	"single_0":     "zero",
	"single_1":     "one",
	"single_2":     "two",
	"single_3":     "three",
	"double_0_0":   "a",
	"double_0_1":   "b",
	"double_1_0":   "c",
	"triple_0_0_0": "x",
	"triple_0_0_1": "y",
	"plain":        "not indexed",
	"single_abc":   "not indexed",
}

func TestNewValidation(t *testing.T) {
	_, err := New("", loader.NewMemoryLoader(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrInvalidArgument)

	_, err = New("messages", nil, nil)
	assert.ErrorIs(t, err, bundle.ErrInvalidArgument)

	it, err := New("messages", loader.NewMemoryLoader(), nil)
	require.NoError(t, err)
	assert.Equal(t, "messages", it.Name())
}

func TestEachInOrder(t *testing.T) {
	it := newIterator(t, "m", bundle.Dictionary{"base_2": "C", "base_0": "A", "base_1": "B"}, nil)

	var visits []visit
	require.NoError(t, it.Each(context.Background(), record(&visits), "base"))

	want := []visit{{"A", []int{0}}, {"B", []int{1}}, {"C", []int{2}}}
	if diff := cmp.Diff(want, visits); diff != "" {
		t.Errorf("visits mismatch (-want +got):\n%s", diff)
	}
}

func TestEachNumericOrder(t *testing.T) {
	it := newIterator(t, "m", bundle.Dictionary{
		"base_10":   "ten",
		"base_2":    "two",
		"base_0_10": "zero-ten",
		"base_0_0":  "zero-zero",
	}, nil)

	var visits []visit
	require.NoError(t, it.Each(context.Background(), record(&visits), "base"))

	want := []visit{
		{"zero-zero", []int{0, 0}},
		{"zero-ten", []int{0, 10}},
		{"two", []int{2}},
		{"ten", []int{10}},
	}
	if diff := cmp.Diff(want, visits); diff != "" {
		t.Errorf("visits mismatch (-want +got):\n%s", diff)
	}
}

func TestEachSkipsNonMatching(t *testing.T) {
	it := newIterator(t, "m", bundle.Dictionary{
		"base":         "no index",
		"base_abc":     "letters",
		"base_1000":    "too many digits",
		"base_1_2_3_4": "too many segments",
		"base_5":       "ok",
	}, nil)

	var visits []visit
	require.NoError(t, it.Each(context.Background(), record(&visits), "base"))
	assert.Equal(t, []visit{{"ok", []int{5}}}, visits)
}

func TestEachTrimsValues(t *testing.T) {
	it := newIterator(t, "m", bundle.Dictionary{"greeting_0": "  hello  ", "greeting_1": "\tworld\n"}, nil)

	var values []string
	require.NoError(t, it.Each(context.Background(), func(value string, _ []int) {
		values = append(values, value)
	}, "greeting"))
	assert.Equal(t, []string{"hello", "world"}, values)
}

func TestEachVisitsEqualTuples(t *testing.T) {
	it := newIterator(t, "m", bundle.Dictionary{"k_7": "short", "k_007": "padded"}, nil)

	var visits []visit
	require.NoError(t, it.Each(context.Background(), record(&visits), "k"))
	assert.Equal(t, []visit{{"padded", []int{7}}, {"short", []int{7}}}, visits)
}

func TestEachNoMatches(t *testing.T) {
	it := newIterator(t, "m", sample, nil)

	calls := 0
	require.NoError(t, it.Each(context.Background(), func(string, []int) { calls++ }, "missing"))
	assert.Zero(t, calls)
}

func TestEachAll(t *testing.T) {
	it := newIterator(t, "m", sample, nil)

	entries, err := it.Entries(context.Background(), "")
	require.NoError(t, err)

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Key
	}
	want := []string{
		"double_0_0", "double_0_1", "double_1_0",
		"hello_0",
		"single_0", "single_1", "single_2", "single_3",
		"triple_0_0_0", "triple_0_0_1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	var visits []visit
	require.NoError(t, it.EachAll(context.Background(), record(&visits)))
	require.Len(t, visits, len(want))
	assert.Equal(t, visit{"good bye", []int{0}}, visits[3])
}

func TestEachAllFamilyOrder(t *testing.T) {
	it := newIterator(t, "m", bundle.Dictionary{"key_0": "plain", "key2_0": "two", "keyB_0": "B"}, nil)

	var values []string
	require.NoError(t, it.EachAll(context.Background(), func(value string, _ []int) {
		values = append(values, value)
	}))
	assert.Equal(t, []string{"two", "B", "plain"}, values)
}

func TestEachResourceNotFound(t *testing.T) {
	it, err := New("missing", loader.NewMemoryLoader(), nil)
	require.NoError(t, err)

	calls := 0
	err = it.Each(context.Background(), func(string, []int) { calls++ }, "base")
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrResourceNotFound)
	assert.Zero(t, calls)
}

func TestEachWrapsForeignLoaderErrors(t *testing.T) {
	cause := errors.New("connection refused")
	it, err := New("m", bundle.LoaderFunc(func(context.Context, string) (bundle.Dictionary, error) {
		return nil, cause
	}), nil)
	require.NoError(t, err)

	err = it.EachAll(context.Background(), func(string, []int) { t.Fatal("loop body must not run") })
	assert.ErrorIs(t, err, bundle.ErrResourceNotFound)
	assert.ErrorIs(t, err, cause)
}

func TestEachKeepsLoaderErrorCode(t *testing.T) {
	it, err := New("m", bundle.LoaderFunc(func(context.Context, string) (bundle.Dictionary, error) {
		return nil, bundle.NewError(bundle.RetCMalformedResource, "bad line 3")
	}), nil)
	require.NoError(t, err)

	err = it.EachAll(context.Background(), func(string, []int) {})
	assert.ErrorIs(t, err, bundle.ErrMalformedResource)
}

func TestEachLoadsOncePerCall(t *testing.T) {
	var loads atomic.Int32
	dict := bundle.Dictionary{"k_0": "a"}
	it, err := New("m", bundle.LoaderFunc(func(_ context.Context, name string) (bundle.Dictionary, error) {
		loads.Add(1)
		assert.Equal(t, "m", name)
		return dict, nil
	}), nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, it.Each(context.Background(), func(string, []int) {}, "k"))
	}
	assert.Equal(t, int32(3), loads.Load())
}

func TestEachSeesDictionaryChanges(t *testing.T) {
	l := loader.NewMemoryLoader()
	require.NoError(t, l.Put("m", bundle.Dictionary{"k_0": "old"}))
	it, err := New("m", l, nil)
	require.NoError(t, err)

	var values []string
	body := func(value string, _ []int) { values = append(values, value) }

	require.NoError(t, it.Each(context.Background(), body, "k"))
	require.NoError(t, l.Put("m", bundle.Dictionary{"k_0": "new", "k_1": "more"}))
	require.NoError(t, it.Each(context.Background(), body, "k"))

	assert.Equal(t, []string{"old", "new", "more"}, values)
}

func TestEachFreshIndexSlices(t *testing.T) {
	it := newIterator(t, "m", bundle.Dictionary{"k_0_1": "a", "k_2_3": "b"}, nil)

	var kept [][]int
	require.NoError(t, it.Each(context.Background(), func(_ string, index []int) {
		kept = append(kept, index)
	}, "k"))
	kept[0][0] = 42

	assert.Equal(t, []int{2, 3}, kept[1])
}

func TestEachNilBody(t *testing.T) {
	it := newIterator(t, "m", sample, nil)
	assert.ErrorIs(t, it.Each(context.Background(), nil, "single"), bundle.ErrInvalidArgument)
}

func TestEachPropagatesPanics(t *testing.T) {
	it := newIterator(t, "m", sample, nil)
	assert.PanicsWithValue(t, "boom", func() {
		_ = it.Each(context.Background(), func(string, []int) { panic("boom") }, "single")
	})
}

func TestAll(t *testing.T) {
	it := newIterator(t, "m", sample, nil)

	seq, err := it.All(context.Background(), "single")
	require.NoError(t, err)

	var values []string
	for value, index := range seq {
		values = append(values, fmt.Sprintf("%d=%s", index[0], value))
		if index[0] == 2 {
			break
		}
	}
	assert.Equal(t, []string{"0=zero", "1=one", "2=two"}, values)

	missing, err := New("missing", loader.NewMemoryLoader(), nil)
	require.NoError(t, err)
	seq, err = missing.All(context.Background(), "single")
	assert.ErrorIs(t, err, bundle.ErrResourceNotFound)
	assert.Nil(t, seq)
}

func TestMetrics(t *testing.T) {
	set := metrics.NewSet()
	it := newIterator(t, "m", sample, &Options{Metrics: set})

	require.NoError(t, it.Each(context.Background(), func(string, []int) {}, "single"))
	require.NoError(t, it.EachAll(context.Background(), func(string, []int) {}))

	missing, err := New("gone", loader.NewMemoryLoader(), &Options{Metrics: set})
	require.NoError(t, err)
	require.Error(t, missing.EachAll(context.Background(), func(string, []int) {}))

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	out := buf.String()

	assert.Contains(t, out, `rbundle_each_total{bundle="m"} 2`)
	assert.Contains(t, out, `rbundle_entries_visited_total{bundle="m"} 14`)
	assert.Contains(t, out, `rbundle_keys_skipped_total{bundle="m"} 10`)
	assert.Contains(t, out, `rbundle_load_errors_total{bundle="gone"} 1`)
	assert.Contains(t, out, `rbundle_load_errors_total{bundle="m"} 0`)
}

func TestEachCanceledContext(t *testing.T) {
	it := newIterator(t, "m", sample, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := it.EachAll(ctx, func(string, []int) { t.Fatal("loop body must not run") })
	assert.ErrorIs(t, err, context.Canceled)
}

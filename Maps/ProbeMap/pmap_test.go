package ProbeMap

import (
	"strconv"
	"testing"

	Go_Utils "github.com/g-m-twostay/go-hashtable"
	"github.com/g-m-twostay/go-hashtable/Maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const COUNT int = 8192

// collide sends every key to slot 0 of any table.
func collide(string) int64 {
	return 0
}

func newMap[K comparable, V any](t testing.TB, capacity int, lf float64, hash Maps.HashFunc[K]) *ProbeMap[K, V] {
	t.Helper()
	M, err := New[K, V](Maps.Config[K]{Capacity: capacity, MaxLoadFactor: lf, Hash: hash, Equal: Maps.ComparableEqual[K]})
	require.NoError(t, err)
	return M
}

func TestProbeMap_All(t *testing.T) {
	M := newMap[int, int](t, DefaultCapacity, DefaultMaxLoadFactor, Maps.IntHash[int](Go_Utils.NewHasher()))
	for i := 0; i < COUNT; i++ {
		if _, ok := M.Set(i, i); ok {
			t.Error("wrong set 1", i)
		}
		if old, ok := M.Set(i, i+1); !ok || old != i {
			t.Error("wrong set 2", i, old)
		}
	}
	if M.Len() != COUNT {
		t.Error("wrong len", M.Len())
	}
	for i := 0; i < COUNT; i++ {
		if v, ok := M.Get(i); !ok || v != i+1 {
			t.Error("wrong get", i, v)
		}
	}
	for i := 0; i < COUNT/2; i++ {
		if _, ok := M.Delete(i); !ok {
			t.Error("wrong delete 1", i)
		}
		if _, ok := M.Delete(i); ok {
			t.Error("wrong delete 2", i)
		}
	}
	for i := 0; i < COUNT; i++ {
		if M.Contains(i) != (i >= COUNT/2) {
			t.Error("wrong contains", i)
		}
	}
}

func TestProbeMap_TombstoneScenario(t *testing.T) {
	M := newMap[string, int](t, 8, 0.45, collide)
	require.Equal(t, 8, M.Cap())
	require.Equal(t, 3, M.Threshold())

	M.Set("A", 10)
	M.Set("B", 20)
	M.Set("C", 30)
	require.Equal(t, []state{occupied, occupied, empty, occupied}, M.tags[:4])
	require.Equal(t, 8, M.Cap(), "three inserts must not reach the threshold check")

	v, ok := M.Delete("B")
	require.True(t, ok)
	require.Equal(t, 20, v)
	require.Equal(t, tombstone, M.tags[1])
	require.Equal(t, 2, M.Len())
	require.Equal(t, 3, M.Used())

	require.True(t, M.Contains("C"))
	// C was moved into B's tombstone.
	require.Equal(t, occupied, M.tags[1])
	require.Equal(t, "C", M.keys[1])
	require.Equal(t, tombstone, M.tags[3])

	v, ok = M.Get("C")
	require.True(t, ok)
	require.Equal(t, 30, v)
	require.False(t, M.Contains("B"))
	require.Equal(t, 2, M.Len())
	require.Equal(t, 3, M.Used())
}

func TestProbeMap_TombstonePathWithoutCompaction(t *testing.T) {
	M := newMap[string, int](t, 64, 0.45, collide)
	for i, k := range []string{"A", "B", "C", "D"} {
		M.Set(k, i)
	}
	M.Delete("B")
	M.Delete("C")
	// D sits past two tombstones; Delete must probe through them.
	v, ok := M.Delete("D")
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 1, M.Len())
	require.Equal(t, 4, M.Used())
}

func TestProbeMap_InsertReusesTombstone(t *testing.T) {
	M := newMap[string, int](t, 16, 0.45, collide)
	M.Set("A", 1)
	M.Set("B", 2)
	M.Delete("A")
	require.Equal(t, 2, M.Used())

	_, ok := M.Set("C", 3)
	require.False(t, ok)
	require.Equal(t, "C", M.keys[0], "new key should take the first tombstone")
	require.Equal(t, 2, M.Used())
	require.Equal(t, 2, M.Len())
	// B must still be found, and Set must not have duplicated it.
	old, ok := M.Set("B", 22)
	require.True(t, ok)
	require.Equal(t, 2, old)
	require.Equal(t, 2, M.Len())
}

func TestProbeMap_OverwriteRelocates(t *testing.T) {
	M := newMap[string, int](t, 16, 0.45, collide)
	M.Set("A", 1)
	M.Set("B", 2)
	M.Delete("A")
	old, ok := M.Set("B", 20)
	require.True(t, ok)
	require.Equal(t, 2, old)
	require.Equal(t, occupied, M.tags[0])
	require.Equal(t, "B", M.keys[0])
	require.Equal(t, tombstone, M.tags[1])
	v, _ := M.Get("B")
	require.Equal(t, 20, v)
}

func TestProbeMap_ResizePreservesMembership(t *testing.T) {
	M := newMap[string, int](t, 8, 0.45, Maps.StringHash(Go_Utils.NewHasher()))
	grows, last := 0, M.Cap()
	for i := range 200 {
		M.Set(strconv.Itoa(i), i)
		if i%3 == 0 {
			M.Delete(strconv.Itoa(i))
		}
		if M.Cap() != last {
			grows++
			last = M.Cap()
		}
		require.LessOrEqual(t, M.Used(), M.Threshold())
		require.Less(t, M.Threshold(), M.Cap())
	}
	require.GreaterOrEqual(t, grows, 2)
	for i := range 200 {
		v, ok := M.Get(strconv.Itoa(i))
		if i%3 == 0 {
			require.False(t, ok, "deleted key %d resurfaced", i)
			continue
		}
		require.True(t, ok, "lost key %d", i)
		require.Equal(t, i, v)
	}
}

func TestProbeMap_GrowDropsTombstones(t *testing.T) {
	M := newMap[int, int](t, 8, 0.45, func(k int) int64 { return int64(k) })
	M.Set(1, 1)
	M.Set(2, 2)
	M.Delete(1)
	M.Set(3, 3)
	require.Equal(t, 3, M.Used())
	require.Equal(t, 2, M.Len())
	M.Set(4, 4) // used reached the threshold: grow first
	require.Equal(t, 16, M.Cap())
	require.Equal(t, 3, M.Used())
	require.Equal(t, 3, M.Len())
	for _, tag := range M.tags {
		require.NotEqual(t, tombstone, tag)
	}
}

func TestProbeMap_ProbeVisitsEverySlot(t *testing.T) {
	for n := 8; n <= 1<<12; n <<= 1 {
		M := newMap[int, int](t, n, 0.45, Maps.IntHash[int](Go_Utils.NewHasher()))
		require.Equal(t, n, M.Cap())
		for _, home := range []int{0, 1, n - 1} {
			seen := make([]bool, n)
			for x := range n {
				seen[M.probe(home, x)] = true
			}
			for i, s := range seen {
				require.True(t, s, "n=%d home=%d never probes %d", n, home, i)
			}
		}
	}
}

func TestProbeMap_HighLoadFactorStillTerminates(t *testing.T) {
	M := newMap[string, int](t, 8, 10, collide)
	require.Equal(t, 7, M.Threshold())
	for i := range 100 {
		M.Set(strconv.Itoa(i), i)
		require.Less(t, M.Used(), M.Cap())
	}
	require.False(t, M.Contains("missing"))
	_, ok := M.Delete("missing")
	require.False(t, ok)
}

func TestProbeMap_TinyLoadFactorGrowsOncePerInsert(t *testing.T) {
	M := newMap[string, int](t, 8, 1e-9, collide)
	require.Equal(t, 1, M.Threshold())
	M.Set("0", 0)
	require.Equal(t, 8, M.Cap())
	for i := 1; i < 5; i++ {
		M.Set(strconv.Itoa(i), i)
		require.Equal(t, 8<<i, M.Cap(), "after insert %d", i)
		require.Equal(t, i+1, M.Used())
		require.Less(t, M.Used(), M.Cap())
	}
	for i := range 5 {
		v, ok := M.Get(strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.False(t, M.Contains("missing"))
}

func TestProbeMap_CapacityRounding(t *testing.T) {
	for capacity, want := range map[int]int{1: 8, 8: 8, 9: 16, 100: 128, 1024: 1024} {
		M := newMap[int, int](t, capacity, 0.45, Maps.IntHash[int](Go_Utils.NewHasher()))
		assert.Equal(t, want, M.Cap(), "capacity %d", capacity)
	}
}

func TestProbeMap_Clear(t *testing.T) {
	M := newMap[string, int](t, 8, 0.45, collide)
	M.Set("A", 1)
	M.Set("B", 2)
	M.Delete("A")
	M.Clear()
	require.Zero(t, M.Len())
	require.Zero(t, M.Used())
	require.Equal(t, 8, M.Cap())
	for _, tag := range M.tags {
		require.Equal(t, empty, tag)
	}
	require.False(t, M.Contains("B"))
	M.Set("B", 3)
	v, _ := M.Get("B")
	require.Equal(t, 3, v)
}

func TestProbeMap_ExtremeHashes(t *testing.T) {
	hashes := map[string]int64{"min": -1 << 63, "max": 1<<63 - 1, "neg": -1}
	M := newMap[string, int](t, 8, 0.45, func(s string) int64 { return hashes[s] })
	for k := range hashes {
		M.Set(k, len(k))
	}
	for k := range hashes {
		v, ok := M.Get(k)
		require.True(t, ok, k)
		require.Equal(t, len(k), v)
	}
}

func TestProbeMap_AllSkipsTombstones(t *testing.T) {
	M := newMap[string, int](t, 16, 0.45, collide)
	M.Set("A", 1)
	M.Set("B", 2)
	M.Set("C", 3)
	M.Delete("B")
	got := map[string]int{}
	for k, v := range M.All() {
		got[k] = v
	}
	require.Equal(t, map[string]int{"A": 1, "C": 3}, got)
}

func TestProbeMap_LogsResize(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	M, err := New[string, int](Maps.Config[string]{Capacity: 8, MaxLoadFactor: 0.45, Hash: collide, Equal: Maps.ComparableEqual[string], Logger: zap.New(core)})
	require.NoError(t, err)
	for _, k := range []string{"A", "B", "C", "D"} {
		M.Set(k, 0)
	}
	entries := logs.FilterMessage("probe map resized").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, 8, entries[0].ContextMap()["from"])
	require.EqualValues(t, 16, entries[0].ContextMap()["to"])
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", empty.String())
	assert.Equal(t, "tombstone", tombstone.String())
	assert.Equal(t, "occupied", occupied.String())
	assert.Equal(t, "invalid", state(9).String())
}

func BenchmarkProbeMap_Put(b *testing.B) {
	h := Go_Utils.NewHasher()
	for range b.N {
		M := newMap[int, int](b, DefaultCapacity, DefaultMaxLoadFactor, Maps.IntHash[int](h))
		for i := 0; i < COUNT; i++ {
			M.Set(i, i)
		}
	}
}

func BenchmarkMap_Put(b *testing.B) {
	for range b.N {
		M := make(map[int]int)
		for i := 0; i < COUNT; i++ {
			M[i] = i
		}
	}
}

func BenchmarkProbeMap_Get(b *testing.B) {
	M := newMap[int, int](b, COUNT, DefaultMaxLoadFactor, Maps.IntHash[int](Go_Utils.NewHasher()))
	for i := 0; i < COUNT; i++ {
		M.Set(i, i)
	}
	b.ResetTimer()
	for range b.N {
		for i := 0; i < COUNT; i++ {
			if x, ok := M.Get(i); !ok || x != i {
				b.Error("wrong value", i, x)
			}
		}
	}
}

func BenchmarkProbeMap_Churn(b *testing.B) {
	M := newMap[int, int](b, COUNT, DefaultMaxLoadFactor, Maps.IntHash[int](Go_Utils.NewHasher()))
	b.ResetTimer()
	for range b.N {
		for i := 0; i < COUNT; i++ {
			M.Set(i, i)
		}
		for i := 0; i < COUNT; i++ {
			M.Delete(i)
		}
	}
}

package sorter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"procexport/models"
)

func names(records []models.ProcessRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func sample() []models.ProcessRecord {
	return []models.ProcessRecord{
		{Name: "gamma", PID: 200, User: "root", Status: "sleep"},
		{Name: "Alpha", PID: 3, User: "Bob", Status: "running"},
		{Name: "beta", PID: 50, User: "alice", Status: "Idle"},
		{Name: "alpha", PID: 7, User: "bob", Status: "zombie"},
	}
}

func TestSortByPID(t *testing.T) {
	in := []models.ProcessRecord{{PID: 50}, {PID: 3}, {PID: 200}}

	got := Sort(in, models.SortByPID)

	assert.Equal(t, []int32{3, 50, 200}, []int32{got[0].PID, got[1].PID, got[2].PID})
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	in := []models.ProcessRecord{{Name: "beta"}, {Name: "Alpha"}, {Name: "gamma"}}

	got := Sort(in, models.SortByName)

	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, names(got))
}

func TestSortIsStable(t *testing.T) {
	got := Sort(sample(), models.SortByName)

	// "Alpha" precedes "alpha" because that is their input order
	assert.Equal(t, []string{"Alpha", "alpha", "beta", "gamma"}, names(got))
	assert.Equal(t, int32(3), got[0].PID)
	assert.Equal(t, int32(7), got[1].PID)
}

func TestSortByUserAndStatus(t *testing.T) {
	byUser := Sort(sample(), models.SortByUser)
	assert.Equal(t, []string{"alice", "Bob", "bob", "root"},
		[]string{byUser[0].User, byUser[1].User, byUser[2].User, byUser[3].User})

	byStatus := Sort(sample(), models.SortByStatus)
	assert.Equal(t, []string{"Idle", "running", "sleep", "zombie"},
		[]string{byStatus[0].Status, byStatus[1].Status, byStatus[2].Status, byStatus[3].Status})
}

func TestSortIsPermutation(t *testing.T) {
	keys := []models.SortKey{models.SortByName, models.SortByPID, models.SortByUser, models.SortByStatus}
	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			in := sample()
			got := Sort(in, key)
			assert.Len(t, got, len(in))
			assert.ElementsMatch(t, in, got)
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sample()
	before := sample()

	_ = Sort(in, models.SortByPID)

	if diff := cmp.Diff(before, in); diff != "" {
		t.Fatalf("input changed (-want +got):\n%s", diff)
	}
}

func TestSortByTokenFallsBackToName(t *testing.T) {
	want := Sort(sample(), models.SortByName)

	for _, token := range []string{"", "bogus", "7", "Threads"} {
		t.Run(token, func(t *testing.T) {
			if diff := cmp.Diff(want, SortByToken(sample(), token)); diff != "" {
				t.Fatalf("token %q differs from Name (-want +got):\n%s", token, diff)
			}
		})
	}

	assert.Equal(t, Sort(sample(), models.SortByPID), SortByToken(sample(), "PID"))
}

func TestSortEmpty(t *testing.T) {
	assert.Empty(t, Sort(nil, models.SortByName))
	assert.NotNil(t, Sort(nil, models.SortByName))
}

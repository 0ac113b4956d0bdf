package journal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

func TestOutcomesAreStoredPerRunInOrder(t *testing.T) {
	is, j := testSetup(t)

	run := uuid.New()
	for _, i := range []int{10, 2, 1} {
		err := j.RecordOutcome(run, domain.HarvestOutcome{Index: i, Item: "10.5281/zenodo.1", Status: domain.OutcomeImported})
		is.NoErr(err)
	}

	other := uuid.New()
	is.NoErr(j.RecordOutcome(other, domain.HarvestOutcome{Index: 0, Status: domain.OutcomeFailed}))

	outcomes, err := j.Outcomes(run)
	is.NoErr(err)

	is.Equal(len(outcomes), 3)
	is.Equal(outcomes[0].Index, 1)
	is.Equal(outcomes[2].Index, 10) // keys sort numerically
	is.Equal(outcomes[0].RunID, run.String())
	is.True(!outcomes[0].Time.IsZero())
}

func TestUnknownRun(t *testing.T) {
	is, j := testSetup(t)

	_, err := j.Outcomes(uuid.New())

	var ure UnknownRunError
	is.True(errors.As(err, &ure))
}

func TestProgressCanBeSavedAndCleared(t *testing.T) {
	is, j := testSetup(t)

	_, found, err := j.Progress("harvest:registry.txt")
	is.NoErr(err)
	is.True(!found)

	is.NoErr(j.SaveProgress("harvest:registry.txt", 20))

	index, found, err := j.Progress("harvest:registry.txt")
	is.NoErr(err)
	is.True(found)
	is.Equal(index, 20)

	is.NoErr(j.ClearProgress("harvest:registry.txt"))

	_, found, err = j.Progress("harvest:registry.txt")
	is.NoErr(err)
	is.True(!found)
}

func TestProgressSurvivesReopening(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	is.NoErr(err)
	is.NoErr(j.SaveProgress("institutes", 30))
	is.NoErr(j.Close())

	j, err = Open(path)
	is.NoErr(err)
	defer j.Close()

	index, found, err := j.Progress("institutes")
	is.NoErr(err)
	is.True(found)
	is.Equal(index, 30)
}

func testSetup(t *testing.T) (*is.I, *Journal) {
	is := is.New(t)

	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	is.NoErr(err)
	t.Cleanup(func() { j.Close() })

	return is, j
}

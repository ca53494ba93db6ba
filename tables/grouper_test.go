package tables_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebitservices/SaborHub-sub000/models"
	"github.com/sebitservices/SaborHub-sub000/tables"
)

func table(id, number, areaID, areaName string) models.Table {
	return models.Table{
		Table_id:     id,
		Table_number: &number,
		Area_id:      &areaID,
		Area_name:    &areaName,
		Status:       models.TableStatusFree,
	}
}

func flattenIDs(clusters [][]models.Table) []string {
	var ids []string
	for _, cluster := range clusters {
		for _, t := range cluster {
			ids = append(ids, t.Table_id)
		}
	}
	return ids
}

func TestGroupCoversEveryTableExactlyOnce(t *testing.T) {
	ts := []models.Table{
		table("t1", "1", "a1", "Terrace"),
		table("t2", "2", "a1", "Terrace"),
		table("t3", "3", "a1", "Terrace"),
		table("t4", "1", "a2", "Hall"),
		table("t5", "2", "a2", "Hall"),
	}
	reg := tables.NewRegistry()
	_, err := reg.Join(ts[0], ts[1])
	require.NoError(t, err)
	_, err = reg.Join(ts[3], ts[4])
	require.NoError(t, err)

	clusters := tables.Group(ts, reg.Groups())

	got := flattenIDs(clusters)
	want := []string{"t1", "t2", "t3", "t4", "t5"}
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestJoinedTablesShareOneCluster(t *testing.T) {
	t1 := table("t1", "1", "a1", "Terrace")
	t2 := table("t2", "2", "a1", "Terrace")
	reg := tables.NewRegistry()
	_, err := reg.Join(t1, t2)
	require.NoError(t, err)

	clusters := tables.Group([]models.Table{t1, t2}, reg.Groups())

	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"t1", "t2"}, []string{clusters[0][0].Table_id, clusters[0][1].Table_id})
}

func TestUnjoinDissolvesWholeGroup(t *testing.T) {
	t1 := table("t1", "1", "a1", "Terrace")
	t2 := table("t2", "2", "a1", "Terrace")
	reg := tables.NewRegistry()
	_, err := reg.Join(t1, t2)
	require.NoError(t, err)

	reg.Unjoin("t1")

	assert.Nil(t, reg.GroupOf("t1"))
	assert.Nil(t, reg.GroupOf("t2"))
	clusters := tables.Group([]models.Table{t1, t2}, reg.Groups())
	assert.Len(t, clusters, 2)
}

func TestJoinAcrossAreasFails(t *testing.T) {
	t1 := table("t1", "1", "a1", "Terrace")
	t2 := table("t2", "1", "a2", "Hall")
	reg := tables.NewRegistry()

	_, err := reg.Join(t1, t2)

	var invalid *tables.InvalidJoinError
	require.ErrorAs(t, err, &invalid)
	assert.False(t, invalid.Conflict)
	assert.Empty(t, reg.Groups())
}

func TestJoinAlreadyJoinedTableConflicts(t *testing.T) {
	t1 := table("t1", "1", "a1", "Terrace")
	t2 := table("t2", "2", "a1", "Terrace")
	t3 := table("t3", "3", "a1", "Terrace")
	reg := tables.NewRegistry()
	_, err := reg.Join(t1, t2)
	require.NoError(t, err)

	_, err = reg.Join(t2, t3)

	var invalid *tables.InvalidJoinError
	require.ErrorAs(t, err, &invalid)
	assert.True(t, invalid.Conflict)
	assert.Len(t, reg.Groups(), 1)
}

func TestJoinTableWithItselfFails(t *testing.T) {
	t1 := table("t1", "1", "a1", "Terrace")
	reg := tables.NewRegistry()

	_, err := reg.Join(t1, t1)

	var invalid *tables.InvalidJoinError
	assert.ErrorAs(t, err, &invalid)
}

func TestClustersOrderedByAreaThenNumericNumber(t *testing.T) {
	ts := []models.Table{
		table("t10", "10", "a2", "Terrace"),
		table("t2", "2", "a2", "Terrace"),
		table("t1", "1", "a1", "Hall"),
	}

	clusters := tables.Group(ts, nil)

	require.Len(t, clusters, 3)
	assert.Equal(t, "t1", clusters[0][0].Table_id)  // Hall before Terrace
	assert.Equal(t, "t2", clusters[1][0].Table_id)  // 2 before 10 numerically
	assert.Equal(t, "t10", clusters[2][0].Table_id)
}

func TestNonNumericNumbersFallBackToLexicographic(t *testing.T) {
	ts := []models.Table{
		table("tb", "B", "a1", "Bar"),
		table("ta", "A", "a1", "Bar"),
	}

	clusters := tables.Group(ts, nil)

	require.Len(t, clusters, 2)
	assert.Equal(t, "ta", clusters[0][0].Table_id)
	assert.Equal(t, "tb", clusters[1][0].Table_id)
}

func TestUnjoinUnknownTableIsNoop(t *testing.T) {
	reg := tables.NewRegistry()
	reg.Unjoin("missing")
	assert.Empty(t, reg.Groups())
}

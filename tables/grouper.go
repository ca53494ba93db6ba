package tables

import (
	"sort"
	"strconv"

	"github.com/sebitservices/SaborHub-sub000/models"
)

// Group partitions tables into display clusters. Members of one join
// group share a cluster; every other table forms a singleton. Each input
// table appears in exactly one cluster. Clusters and their members are
// ordered by area name, then by the numeric portion of the table number,
// falling back to the raw string when the number has no digits.
func Group(tables []models.Table, joins []*JoinGroup) [][]models.Table {
	groupOf := make(map[string]string)
	for _, g := range joins {
		for _, id := range g.Table_ids {
			groupOf[id] = g.Group_id
		}
	}

	joined := make(map[string][]models.Table)
	var clusters [][]models.Table
	for _, t := range tables {
		gid, ok := groupOf[t.Table_id]
		if !ok {
			clusters = append(clusters, []models.Table{t})
			continue
		}
		joined[gid] = append(joined[gid], t)
	}
	for _, members := range joined {
		clusters = append(clusters, members)
	}

	for _, cluster := range clusters {
		sortTables(cluster)
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return tableLess(clusters[i][0], clusters[j][0])
	})
	return clusters
}

func sortTables(ts []models.Table) {
	sort.SliceStable(ts, func(i, j int) bool {
		return tableLess(ts[i], ts[j])
	})
}

func tableLess(a, b models.Table) bool {
	areaA, areaB := areaName(a), areaName(b)
	if areaA != areaB {
		return areaA < areaB
	}
	numA, numB := tableNumber(a), tableNumber(b)
	na, okA := numericPortion(numA)
	nb, okB := numericPortion(numB)
	if okA && okB && na != nb {
		return na < nb
	}
	return numA < numB
}

func areaName(t models.Table) string {
	if t.Area_name != nil {
		return *t.Area_name
	}
	return ""
}

func tableNumber(t models.Table) string {
	if t.Table_number != nil {
		return *t.Table_number
	}
	return ""
}

// numericPortion extracts the digits of a table number such as "T-12".
func numericPortion(s string) (int, bool) {
	digits := ""
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits += string(r)
		}
	}
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

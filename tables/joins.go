package tables

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/sebitservices/SaborHub-sub000/models"
)

// JoinGroup associates two tables serving one party. Groups live only in
// memory for the lifetime of the process; they are never persisted.
type JoinGroup struct {
	Group_id  string   `json:"group_id"`
	Table_ids []string `json:"table_ids"`
	Area_id   string   `json:"area_id"`
}

// InvalidJoinError reports a join request that cannot be honored.
// Conflict is set when the reason is an existing membership rather than a
// malformed request, so callers can answer 409 instead of 400.
type InvalidJoinError struct {
	Reason   string
	Conflict bool
}

func (e *InvalidJoinError) Error() string {
	return fmt.Sprintf("invalid join: %s", e.Reason)
}

// Registry tracks the live join groups. A table belongs to at most one
// group at a time.
type Registry struct {
	mu     sync.Mutex
	groups map[string]*JoinGroup // group_id -> group
	member map[string]string     // table_id -> group_id
}

func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string]*JoinGroup),
		member: make(map[string]string),
	}
}

// Join pairs two free-standing tables from the same area. Joining a third
// table into an existing group is not supported; the request fails if
// either table is already a member anywhere.
func (r *Registry) Join(a models.Table, b models.Table) (*JoinGroup, error) {
	if a.Table_id == b.Table_id {
		return nil, &InvalidJoinError{Reason: "a table cannot be joined with itself"}
	}
	if a.Area_id == nil || b.Area_id == nil || *a.Area_id != *b.Area_id {
		return nil, &InvalidJoinError{Reason: "tables belong to different areas"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if gid, ok := r.member[a.Table_id]; ok {
		return nil, &InvalidJoinError{
			Reason:   fmt.Sprintf("table %s is already in join group %s", a.Table_id, gid),
			Conflict: true,
		}
	}
	if gid, ok := r.member[b.Table_id]; ok {
		return nil, &InvalidJoinError{
			Reason:   fmt.Sprintf("table %s is already in join group %s", b.Table_id, gid),
			Conflict: true,
		}
	}

	group := &JoinGroup{
		Group_id:  uuid.New().String(),
		Table_ids: []string{a.Table_id, b.Table_id},
		Area_id:   *a.Area_id,
	}
	r.groups[group.Group_id] = group
	r.member[a.Table_id] = group.Group_id
	r.member[b.Table_id] = group.Group_id
	return group, nil
}

// Unjoin dissolves the entire group containing the table; every member
// returns to singleton status. Unjoining a table with no group is a no-op.
func (r *Registry) Unjoin(tableID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gid, ok := r.member[tableID]
	if !ok {
		return
	}
	group := r.groups[gid]
	for _, id := range group.Table_ids {
		delete(r.member, id)
	}
	delete(r.groups, gid)
}

// GroupOf returns the group containing the table, or nil.
func (r *Registry) GroupOf(tableID string) *JoinGroup {
	r.mu.Lock()
	defer r.mu.Unlock()

	gid, ok := r.member[tableID]
	if !ok {
		return nil
	}
	return copyGroup(r.groups[gid])
}

// Groups returns a snapshot of all live join groups.
func (r *Registry) Groups() []*JoinGroup {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*JoinGroup, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, copyGroup(g))
	}
	return out
}

func copyGroup(g *JoinGroup) *JoinGroup {
	ids := make([]string, len(g.Table_ids))
	copy(ids, g.Table_ids)
	return &JoinGroup{Group_id: g.Group_id, Table_ids: ids, Area_id: g.Area_id}
}

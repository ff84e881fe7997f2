package webhook

// Scope targets either a project or a group, never both and never neither.
type Scope struct {
	projectID *string
	groupID   *string
}

func NewScope(projectID, groupID *string) (Scope, error) {
	if (projectID == nil) == (groupID == nil) {
		return Scope{}, ErrInvalidScope
	}
	return Scope{projectID: projectID, groupID: groupID}, nil
}

func ProjectScope(projectID string) Scope {
	return Scope{projectID: &projectID}
}

func GroupScope(groupID string) Scope {
	return Scope{groupID: &groupID}
}

func (s Scope) ProjectID() *string { return s.projectID }
func (s Scope) GroupID() *string   { return s.groupID }

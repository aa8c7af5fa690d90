package mapper

import (
	"staffhub/internal/adapter/http/dto"
	"staffhub/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:                 project.ID,
		Name:               project.Name,
		StartDate:          project.StartDate.Format("2006-01-02"),
		EndDate:            project.EndDate.Format("2006-01-02"),
		ProjectManagerID:   project.ManagerID,
		ProjectManagerName: project.ManagerName,
		Developers:         ToMemberItems(project.Developers),
	}

	if project.TeamLead != nil {
		lead := ToMemberItem(*project.TeamLead)
		item.TeamLead = &lead
	}

	return item
}

func ToMemberItems(members []domain.Member) []dto.MemberItem {
	items := make([]dto.MemberItem, 0, len(members))
	for _, member := range members {
		items = append(items, ToMemberItem(member))
	}
	return items
}

func ToMemberItem(member domain.Member) dto.MemberItem {
	return dto.MemberItem{
		EmployeeID: member.EmployeeID,
		Name:       member.Name,
		Role:       member.Role,
	}
}

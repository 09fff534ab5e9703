// Package model содержит доменные структуры экспорта и дашборда мероприятия.
package model

import "strings"

// ExportItemID обозначает категорию данных, доступную для экспорта.
type ExportItemID string

const (
	ItemTeam       ExportItemID = "team"
	ItemMembers    ExportItemID = "members"
	ItemAgenda     ExportItemID = "agenda"
	ItemRisks      ExportItemID = "risks"
	ItemMilestones ExportItemID = "milestones"
	ItemTasks      ExportItemID = "tasks"
	ItemBudget     ExportItemID = "budget"
	ItemFeedback   ExportItemID = "feedback"
)

// KnownExportItems задаёт фиксированный порядок всех поддерживаемых токенов.
var KnownExportItems = []ExportItemID{
	ItemTeam,
	ItemMembers,
	ItemAgenda,
	ItemRisks,
	ItemMilestones,
	ItemTasks,
	ItemBudget,
	ItemFeedback,
}

// ParseExportItemID приводит строку к ExportItemID.
// Возвращает false, если токен не входит в известный набор.
func ParseExportItemID(raw string) (ExportItemID, bool) {
	id := ExportItemID(strings.TrimSpace(raw))
	for _, known := range KnownExportItems {
		if id == known {
			return id, true
		}
	}
	return "", false
}

// Record описывает одну запись доменных данных: имя поля -> значение.
type Record map[string]any

// ExportRequest описывает запрос на экспорт выбранных категорий мероприятия.
type ExportRequest struct {
	EventID string
	ItemIDs []string
}

// Artifact описывает именованный буфер, который попадёт в архив.
type Artifact struct {
	Name    string
	Content []byte
}

// ExportItemInfo описывает категорию экспорта для клиента.
type ExportItemInfo struct {
	ID    ExportItemID `json:"id"`
	Title string       `json:"title"`
	File  string       `json:"file"`
}

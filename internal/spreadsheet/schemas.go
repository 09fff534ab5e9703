package spreadsheet

import "event-management-service/internal/model"

var (
	roleLabels = map[string]string{
		"HoOC":   "Trưởng ban tổ chức",
		"HoD":    "Trưởng ban",
		"Member": "Thành viên",
	}
	levelLabels = map[string]string{
		"low":    "Thấp",
		"medium": "Trung bình",
		"high":   "Cao",
	}
	riskStatusLabels = map[string]string{
		"not_yet":   "Chưa xảy ra",
		"occurred":  "Đã xảy ra",
		"resolved":  "Đã xử lý",
		"cancelled": "Đã huỷ",
	}
	milestoneStatusLabels = map[string]string{
		"planned":   "Kế hoạch",
		"completed": "Hoàn thành",
		"missed":    "Trễ hạn",
	}
	taskStatusLabels = map[string]string{
		"todo":        "Chưa bắt đầu",
		"in_progress": "Đang làm",
		"blocked":     "Bị chặn",
		"done":        "Hoàn thành",
		"cancelled":   "Đã huỷ",
	}
	budgetStatusLabels = map[string]string{
		"draft":     "Nháp",
		"submitted": "Đã gửi duyệt",
		"approved":  "Đã duyệt",
		"rejected":  "Bị từ chối",
	}
)

var schemas = map[model.ExportItemID]Schema{
	model.ItemTeam: {
		Item:  model.ItemTeam,
		Title: "DANH SÁCH BAN",
		Sheet: "Ban",
		File:  "team.xlsx",
		Columns: []Column{
			{Header: "Tên ban", Field: "name", Width: 28, Format: Text},
			{Header: "Trưởng ban", Field: "leader_name", Width: 24, Format: Text},
			{Header: "Mô tả", Field: "description", Width: 40, Format: Text},
			{Header: "Số thành viên", Field: "member_count", Width: 14, Format: Integer},
			{Header: "Ngày tạo", Field: "created_at", Width: 14, Format: Date},
		},
	},
	model.ItemMembers: {
		Item:  model.ItemMembers,
		Title: "DANH SÁCH THÀNH VIÊN",
		Sheet: "Thành viên",
		File:  "members.xlsx",
		Columns: []Column{
			{Header: "Họ và tên", Field: "full_name", Width: 26, Format: Text},
			{Header: "Email", Field: "email", Width: 30, Format: Text},
			{Header: "Số điện thoại", Field: "phone", Width: 16, Format: Text},
			{Header: "Ban", Field: "department_name", Width: 22, Format: Text},
			{Header: "Vai trò", Field: "role", Width: 20, Format: Enum(roleLabels)},
			{Header: "Ngày tham gia", Field: "joined_at", Width: 14, Format: Date},
		},
	},
	model.ItemAgenda: {
		Item:  model.ItemAgenda,
		Title: "CHƯƠNG TRÌNH",
		Sheet: "Chương trình",
		File:  "agenda.xlsx",
		Columns: []Column{
			{Header: "Ngày", Field: "start_at", Width: 14, Format: Date},
			{Header: "Bắt đầu", Field: "start_at", Width: 10, Format: Clock},
			{Header: "Kết thúc", Field: "end_at", Width: 10, Format: Clock},
			{Header: "Nội dung", Field: "content", Width: 44, Format: Text},
			{Header: "Phụ trách", Field: "owner_name", Width: 22, Format: Text},
		},
	},
	model.ItemRisks: {
		Item:  model.ItemRisks,
		Title: "DANH SÁCH RỦI RO",
		Sheet: "Rủi ro",
		File:  "risks.xlsx",
		Columns: []Column{
			{Header: "Rủi ro", Field: "name", Width: 30, Format: Text},
			{Header: "Ban phụ trách", Field: "department_name", Width: 22, Format: Text},
			{Header: "Mức ảnh hưởng", Field: "impact", Width: 14, Format: Enum(levelLabels)},
			{Header: "Khả năng xảy ra", Field: "likelihood", Width: 14, Format: Enum(levelLabels)},
			{Header: "Phương án xử lý", Field: "mitigation", Width: 40, Format: Text},
			{Header: "Trạng thái", Field: "status", Width: 14, Format: Enum(riskStatusLabels)},
		},
	},
	model.ItemMilestones: {
		Item:  model.ItemMilestones,
		Title: "CỘT MỐC",
		Sheet: "Cột mốc",
		File:  "milestones.xlsx",
		Columns: []Column{
			{Header: "Cột mốc", Field: "name", Width: 30, Format: Text},
			{Header: "Mô tả", Field: "description", Width: 40, Format: Text},
			{Header: "Thời hạn", Field: "target_date", Width: 14, Format: Date},
			{Header: "Trạng thái", Field: "status", Width: 14, Format: Enum(milestoneStatusLabels)},
		},
	},
	model.ItemTasks: {
		Item:  model.ItemTasks,
		Title: "DANH SÁCH CÔNG VIỆC",
		Sheet: "Công việc",
		File:  "tasks.xlsx",
		Columns: []Column{
			{Header: "Công việc", Field: "title", Width: 34, Format: Text},
			{Header: "Ban", Field: "department_name", Width: 20, Format: Text},
			{Header: "Người phụ trách", Field: "assignee_name", Width: 22, Format: Text},
			{Header: "Ưu tiên", Field: "priority", Width: 12, Format: Enum(levelLabels)},
			{Header: "Trạng thái", Field: "status", Width: 14, Format: Enum(taskStatusLabels)},
			{Header: "Bắt đầu", Field: "start_date", Width: 14, Format: Date},
			{Header: "Hạn chót", Field: "due_date", Width: 14, Format: Date},
		},
	},
	model.ItemBudget: {
		Item:  model.ItemBudget,
		Title: "NGÂN SÁCH",
		Sheet: "Ngân sách",
		File:  "budget.xlsx",
		Columns: []Column{
			{Header: "Hạng mục", Field: "category", Width: 20, Format: Text},
			{Header: "Nội dung", Field: "item_name", Width: 30, Format: Text},
			{Header: "Ban", Field: "department_name", Width: 20, Format: Text},
			{Header: "Số lượng", Field: "quantity", Width: 10, Format: Integer},
			{Header: "Đơn giá", Field: "unit_price", Width: 16, Format: Decimal(2)},
			{Header: "Dự kiến", Field: "planned_amount", Width: 16, Format: Decimal(2)},
			{Header: "Thực chi", Field: "actual_amount", Width: 16, Format: Decimal(2)},
			{Header: "Trạng thái", Field: "status", Width: 14, Format: Enum(budgetStatusLabels)},
		},
	},
	model.ItemFeedback: {
		Item:  model.ItemFeedback,
		Title: "PHẢN HỒI",
		Sheet: "Phản hồi",
		File:  "feedback.xlsx",
		Columns: []Column{
			{Header: "Người gửi", Field: "author_name", Width: 24, Format: Text},
			{Header: "Đánh giá", Field: "rating", Width: 10, Format: Integer},
			{Header: "Nội dung", Field: "comment", Width: 50, Format: Text},
			{Header: "Thời gian", Field: "submitted_at", Width: 18, Format: DateTime},
		},
	},
}

// SchemaFor возвращает схему листа для категории экспорта.
func SchemaFor(id model.ExportItemID) (Schema, bool) {
	s, ok := schemas[id]
	return s, ok
}

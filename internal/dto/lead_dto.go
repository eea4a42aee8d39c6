package dto

type SetLeadRequest struct {
	LeadId int64 `json:"lead_id" validate:"required,gt=0"`
}

type LeadResponse struct {
	LeadId *int64 `json:"lead_id"`
}

package dto

type LogQuery struct {
	Level  string `query:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	Module string `query:"module"`
	Limit  int    `query:"limit" validate:"gte=0,lte=500"`
	Offset int    `query:"offset" validate:"gte=0"`
}

type TriggerEventRequest struct {
	Type string                 `json:"type" validate:"required,max=64"`
	Data map[string]interface{} `json:"data"`
}

type TriggerEventResponse struct {
	Type    string `json:"type"`
	Sockets int    `json:"sockets"`
}

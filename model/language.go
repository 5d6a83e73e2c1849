package model

// SetLanguageRequest switches the active UI locale.
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=uz ru"`
}

type TranslateResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

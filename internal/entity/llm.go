package entity

type LLMGenerateRequest struct {
	Prompt string `json:"prompt"`
}

type LLMGenerateResponse struct {
	Result string `json:"result"`
}

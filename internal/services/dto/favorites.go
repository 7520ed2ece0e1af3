package dto

type ShortlistRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type ShortlistItemRequest struct {
	TalentID string `json:"talent_id" validate:"required"`
	Note     string `json:"note" validate:"max=1000"`
}

type SavedToggleResponse struct {
	TalentID string `json:"talent_id"`
	Saved    bool   `json:"saved"`
}

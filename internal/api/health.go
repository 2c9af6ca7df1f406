package api

import (
	"context"
	"fmt"
	"net/http"

	"fitcoach/client/internal/domain"
)

// CreateHealthDeclarationRequest carries the screening answers. The backend
// assigns the id and links the declaration to the submitting trainee.
type CreateHealthDeclarationRequest struct {
	HeartDisease            bool `json:"heartDisease"`
	ChestPainInRest         bool `json:"chestPainInRest"`
	ChestPainInDaily        bool `json:"chestPainInDaily"`
	ChestPainInActivity     bool `json:"chestPainInActivity"`
	Dizzy                   bool `json:"dizzy"`
	LostConsciousness       bool `json:"lostConsciousness"`
	AsthmaTreatment         bool `json:"asthmaTreatment"`
	ShortBreath             bool `json:"shortBreath"`
	FamilyDeathHeartDisease bool `json:"familyDeathHeartDisease"`
	FamilySuddenEarlyDeath  bool `json:"familySuddenEarlyAgeDeath"`
	TrainUnderSupervision   bool `json:"trainUnderSupervision"`
	ChronicIllness          bool `json:"chronicIllness"`
	IsPregnant              bool `json:"isPregnant"`
}

// GetHealthDeclarationByUser fetches a trainee's declaration. Admin only.
func (c *Client) GetHealthDeclarationByUser(ctx context.Context, userID int64) (*domain.HealthDeclaration, error) {
	var decl domain.HealthDeclaration
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/healthDeclarations/admin/user/%d", userID), nil, true, &decl); err != nil {
		return nil, err
	}
	return &decl, nil
}

// CreateHealthDeclaration submits the questionnaire and returns the created
// declaration.
func (c *Client) CreateHealthDeclaration(ctx context.Context, req CreateHealthDeclarationRequest) (*domain.HealthDeclaration, error) {
	var decl domain.HealthDeclaration
	if err := c.do(ctx, http.MethodPost, "/healthDeclarations/admin", req, true, &decl); err != nil {
		return nil, err
	}
	return &decl, nil
}

// DeleteHealthDeclaration removes a declaration. The trainee's profile keeps a
// nullable reference to it, which the caller must clear in its own state.
func (c *Client) DeleteHealthDeclaration(ctx context.Context, id int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/healthDeclarations/admin/%d", id), nil, true, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

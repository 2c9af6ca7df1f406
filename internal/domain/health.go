package domain

// HealthDeclaration is the fixed medical screening questionnaire, at most one
// per trainee. The trainee's profile references it by id, not by embedding.
type HealthDeclaration struct {
	ID                       int64 `json:"id"`
	HeartDisease             bool  `json:"heartDisease"`
	ChestPainInRest          bool  `json:"chestPainInRest"`
	ChestPainInDaily         bool  `json:"chestPainInDaily"`
	ChestPainInActivity      bool  `json:"chestPainInActivity"`
	Dizzy                    bool  `json:"dizzy"`
	LostConsciousness        bool  `json:"lostConsciousness"`
	AsthmaTreatment          bool  `json:"asthmaTreatment"`
	ShortBreath              bool  `json:"shortBreath"`
	FamilyDeathHeartDisease  bool  `json:"familyDeathHeartDisease"`
	FamilySuddenEarlyDeath   bool  `json:"familySuddenEarlyAgeDeath"`
	TrainUnderSupervision    bool  `json:"trainUnderSupervision"`
	ChronicIllness           bool  `json:"chronicIllness"`
	IsPregnant               bool  `json:"isPregnant"`
}

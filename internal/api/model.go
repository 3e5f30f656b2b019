package api

type queryRequest struct {
	Password string `json:"password" binding:"required"`
}

type hashRequest struct {
	Hash string `json:"hash" binding:"required"`
}

type passwordStrength struct {
	CrackTime        float64 `json:"crackTime"`
	CrackTimeDisplay string  `json:"crackTimeDisplay"`
	Score            int     `json:"score"`
}

type queryResponse struct {
	Pwned       bool              `json:"pwned"`
	Sites       int               `json:"sites"`
	Occurrences uint64            `json:"occurrences"`
	Strength    *passwordStrength `json:"strength,omitempty"`
}

// Copyright (c) 2025. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nbutton23/zxcvbn-go"

	"breachlook/pkg/hibp"
)

var sha1Hex = regexp.MustCompile(`^[a-fA-F\d]{40}$`)

type queryApi struct {
	lookuper *hibp.Lookuper
}

func (q *queryApi) checkPassword(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := q.lookuper.Lookup(c.Request.Context(), req.Password)
	if err != nil {
		// The breach index is an upstream dependency of this endpoint.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	entropy := zxcvbn.PasswordStrength(req.Password, nil)
	resp := queryResponse{
		Pwned:       result.Pwned(),
		Sites:       result.Sites,
		Occurrences: result.Occurrences,
		Strength: &passwordStrength{
			CrackTime:        entropy.CrackTime,
			CrackTimeDisplay: entropy.CrackTimeDisplay,
			Score:            entropy.Score,
		},
	}

	c.JSON(http.StatusOK, resp)
}

func (q *queryApi) checkHash(c *gin.Context) {
	var req hashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !sha1Hex.MatchString(req.Hash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is not a valid SHA1 Hexadecimal hash"})
		return
	}

	result, err := q.lookuper.LookupDigest(c.Request.Context(), strings.ToUpper(req.Hash))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, queryResponse{
		Pwned:       result.Pwned(),
		Sites:       result.Sites,
		Occurrences: result.Occurrences,
	})
}

func RegisterQueryApi(group *gin.RouterGroup, lookuper *hibp.Lookuper) {
	q := &queryApi{lookuper: lookuper}

	group.POST("/password", q.checkPassword)
	group.POST("/hash", q.checkHash)
}

package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kubelouislu/sre-portfolio/internal/lang"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every request with an id, reusing a well-formed incoming
// X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// untrackedPrefixes are never logged as visits.
var untrackedPrefixes = []string{"/static/", "/favicon", "/healthz"}

// VisitorLogger logs page visits with the client IP hashed. Requests
// carrying "DNT: 1" are not logged.
type VisitorLogger struct {
	salt   string
	logger *log.Logger
}

// NewVisitorLogger returns a logger hashing IPs with salt; an empty salt
// is replaced with a random one.
func NewVisitorLogger(salt string, logger *log.Logger) *VisitorLogger {
	if salt == "" {
		salt = randomSalt()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &VisitorLogger{salt: salt, logger: logger}
}

func randomSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate visitor salt:", err)
	}
	return hex.EncodeToString(b)
}

// HashIP returns a stable, truncated hash of ip.
func (v *VisitorLogger) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + v.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (v *VisitorLogger) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		v.logger.Printf("visit %s %s lang=%s ua=%q", v.HashIP(c.ClientIP()), path, requestLanguage(c, lang.Default), c.GetHeader("User-Agent"))
		c.Next()
	}
}

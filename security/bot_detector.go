// Package security holds the heuristics that keep automated traffic out of
// click registration, so campaign click counts reflect real visitors.
package security

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// BotDetector flags requests that look automated: link-preview crawlers
// unfurling a short link in a chat, scripted clients, or a single IP
// hammering the click endpoints.
type BotDetector struct {
	requestTracker map[string]*requestHistory
	mu             sync.RWMutex

	maxRequestsPerMinute int
	cleanupInterval      time.Duration
}

// requestHistory tracks request timestamps for an IP.
type requestHistory struct {
	requests []time.Time
	lastSeen time.Time
}

// previewBots are crawlers that unfurl links in chats and feeds. They follow
// every shared short link and would inflate click counts if registered.
var previewBots = []string{
	"googlebot",
	"bingbot",
	"slackbot",
	"twitterbot",
	"facebookexternalhit",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"discordbot",
	"vkshare",
}

// automationMarkers are user-agent fragments of scripted clients.
var automationMarkers = []string{
	"curl/",
	"wget/",
	"python-requests",
	"python-urllib",
	"go-http-client",
	"okhttp",
	"headlesschrome",
	"phantomjs",
	"scrapy",
	"bot",
	"spider",
	"crawler",
}

// NewBotDetector creates a detector. A background goroutine prunes idle IPs.
func NewBotDetector(maxRequestsPerMinute int) *BotDetector {
	bd := &BotDetector{
		requestTracker:       make(map[string]*requestHistory),
		maxRequestsPerMinute: maxRequestsPerMinute,
		cleanupInterval:      5 * time.Minute,
	}

	go bd.cleanupOldEntries()

	return bd
}

// IsBot reports whether a request appears automated, with a reason tag.
func (bd *BotDetector) IsBot(r *http.Request) (bool, string) {
	userAgent := strings.ToLower(r.UserAgent())
	ip := ClientIP(r)

	if userAgent == "" {
		return true, "empty_user_agent"
	}

	for _, bot := range previewBots {
		if strings.Contains(userAgent, bot) {
			return true, "link_preview_bot"
		}
	}

	for _, marker := range automationMarkers {
		if strings.Contains(userAgent, marker) {
			return true, "automation_user_agent"
		}
	}

	if bd.checkRequestRate(ip) {
		return true, "excessive_request_rate"
	}

	return false, ""
}

// checkRequestRate records the request and reports whether the IP exceeded
// the per-minute budget.
func (bd *BotDetector) checkRequestRate(ip string) bool {
	bd.mu.Lock()
	defer bd.mu.Unlock()

	now := time.Now()
	history, exists := bd.requestTracker[ip]
	if !exists {
		history = &requestHistory{}
		bd.requestTracker[ip] = history
	}
	history.lastSeen = now

	cutoff := now.Add(-time.Minute)
	recent := history.requests[:0]
	for _, ts := range history.requests {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	history.requests = append(recent, now)

	return len(history.requests) > bd.maxRequestsPerMinute
}

// cleanupOldEntries prunes IPs not seen within the cleanup interval.
func (bd *BotDetector) cleanupOldEntries() {
	ticker := time.NewTicker(bd.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-bd.cleanupInterval)

		bd.mu.Lock()
		for ip, history := range bd.requestTracker {
			if history.lastSeen.Before(cutoff) {
				delete(bd.requestTracker, ip)
			}
		}
		bd.mu.Unlock()
	}
}

// ClientIP extracts the originating client IP, preferring proxy headers.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if cfIP := r.Header.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

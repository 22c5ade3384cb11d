package usecases

import (
	"strings"

	"cybershield.backend/internal/domain/entities"
)

// Classification is the outcome of one classifier run
type Classification struct {
	Status  entities.ScanStatus
	Summary string
	Details map[string]interface{}
}

// Keyword vocabularies for URL and filename classification. Rule order is
// significant: danger keywords are checked before warning keywords, and the
// default is clean.
var (
	dangerKeywords      = []string{"malicious", "phish", "warning"}
	warningKeywords     = []string{"test", "example"}
	dangerousExtensions = []string{".exe", ".bat"}
)

const aiQueryTargetLimit = 100

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ClassifyURL classifies a URL against the fixed keyword vocabulary. It is
// deterministic and never consults an external service.
func ClassifyURL(url string) Classification {
	lowered := strings.ToLower(url)

	switch {
	case containsAny(lowered, dangerKeywords):
		return Classification{
			Status:  entities.StatusDanger,
			Summary: "DANGER: this URL matches known threat signatures",
			Details: map[string]interface{}{
				"threat_level":   "high",
				"threats_found":  []string{"Phishing signature match", "Malware distribution pattern"},
				"ssl_valid":      false,
				"recommendation": "Do not visit this URL. Block it across your organization.",
			},
		}
	case containsAny(lowered, warningKeywords):
		return Classification{
			Status:  entities.StatusWarning,
			Summary: "WARNING: this URL shows suspicious characteristics",
			Details: map[string]interface{}{
				"threat_level":   "medium",
				"threats_found":  []string{"Suspicious domain pattern"},
				"ssl_valid":      true,
				"recommendation": "Proceed with caution and verify the site owner.",
			},
		}
	default:
		return Classification{
			Status:  entities.StatusClean,
			Summary: "CLEAN: no known threats detected for this URL",
			Details: map[string]interface{}{
				"threat_level":   "none",
				"threats_found":  []string{},
				"ssl_valid":      true,
				"recommendation": "No action required.",
			},
		}
	}
}

// ClassifyFilename classifies an uploaded file by its name only. File
// contents are never inspected.
func ClassifyFilename(filename string) Classification {
	lowered := strings.ToLower(filename)

	dangerous := containsAny(lowered, dangerKeywords)
	if !dangerous {
		for _, ext := range dangerousExtensions {
			if strings.HasSuffix(lowered, ext) {
				dangerous = true
				break
			}
		}
	}

	switch {
	case dangerous:
		return Classification{
			Status:  entities.StatusDanger,
			Summary: "DANGER: this file is flagged as potentially harmful",
			Details: map[string]interface{}{
				"threat_level":   "high",
				"detections":     []string{"Executable payload heuristic", "Known malicious naming pattern"},
				"quarantined":    true,
				"recommendation": "Delete this file and run a full system scan.",
			},
		}
	case containsAny(lowered, warningKeywords):
		return Classification{
			Status:  entities.StatusWarning,
			Summary: "WARNING: this file shows suspicious characteristics",
			Details: map[string]interface{}{
				"threat_level":   "medium",
				"detections":     []string{"Suspicious filename pattern"},
				"quarantined":    false,
				"recommendation": "Verify the file origin before opening it.",
			},
		}
	default:
		return Classification{
			Status:  entities.StatusClean,
			Summary: "CLEAN: no known threats detected for this file",
			Details: map[string]interface{}{
				"threat_level":   "none",
				"detections":     []string{},
				"quarantined":    false,
				"recommendation": "No action required.",
			},
		}
	}
}

// ClassifyEmail runs the breach lookup stub for an email address
func ClassifyEmail(email string) Classification {
	if strings.Contains(strings.ToLower(email), "breached") {
		return Classification{
			Status:  entities.StatusWarning,
			Summary: "WARNING: this email appears in 3 known data breaches",
			Details: map[string]interface{}{
				"breaches_found": 3,
				"breaches": []map[string]interface{}{
					{"name": "SocialConnect", "date": "2021-06-14", "compromised_data": []string{"emails", "passwords"}},
					{"name": "ShopSphere", "date": "2022-11-02", "compromised_data": []string{"emails", "phone numbers"}},
					{"name": "CloudNotes", "date": "2023-03-28", "compromised_data": []string{"emails", "usernames", "passwords"}},
				},
				"recommendation": "Change your passwords immediately and enable two-factor authentication.",
			},
		}
	}
	return Classification{
		Status:  entities.StatusClean,
		Summary: "CLEAN: this email does not appear in any known data breach",
		Details: map[string]interface{}{
			"breaches_found": 0,
			"breaches":       []map[string]interface{}{},
			"recommendation": "No action required.",
		},
	}
}

// AnswerAIQuery returns the canned AI assistant answer. The query content is
// ignored beyond truncation of the stored target to its first 100 characters.
func AnswerAIQuery(query string) (string, Classification) {
	target := query
	if len(target) > aiQueryTargetLimit {
		target = target[:aiQueryTargetLimit]
	}

	return target, Classification{
		Status:  entities.StatusSuccess,
		Summary: "SUCCESS: your security question was answered",
		Details: map[string]interface{}{
			"answer": "Use strong unique passwords for every account, keep your software up to date, and be wary of unsolicited links or attachments. For organizations, enforce least-privilege access and multi-factor authentication.",
			"sources": []map[string]interface{}{
				{"title": "NIST Cybersecurity Framework", "url": "https://www.nist.gov/cyberframework"},
				{"title": "OWASP Top Ten", "url": "https://owasp.org/www-project-top-ten/"},
			},
		},
	}
}

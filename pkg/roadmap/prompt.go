package roadmap

import (
	"fmt"
	"strings"
	"time"
)

// systemInstruction pins the model to a machine-readable contract: one JSON
// object in the exact schema below, 6-12 milestones, 3-5 resources each.
const systemInstruction = `You are an expert career counselor and learning path designer.
You create detailed, actionable career roadmaps with real, current, verified resources and links.

Respond ONLY with a single valid JSON object in the exact format below. Do not include any explanatory text before or after the JSON.

{
    "title": "Career Path: [Current Role] to [Target Role]",
    "description": "A comprehensive roadmap to transition from [current role] to [target role] within the requested timeline",
    "market_context": "Current market insights and demand for the target role",
    "milestones": [
        {
            "title": "Milestone Title",
            "description": "Detailed description of what to accomplish",
            "estimated_hours": 35,
            "market_relevance": "Why this milestone matters in the current job market",
            "resources": [
                {"title": "Course Name", "url": "https://real-course-url.com", "type": "course", "provider": "Coursera/Udemy/edX", "cost": "Free/Paid", "rating": "4.5/5"},
                {"title": "Book Title", "url": "https://real-book-link.com", "type": "book", "author": "Author Name", "year": "2024/2025"},
                {"title": "Certification Name", "url": "https://real-cert-provider.com", "type": "certification", "provider": "Provider Name", "duration": "X weeks"}
            ],
            "order": 1
        }
    ],
    "total_estimated_hours": 300,
    "current_market_salary": "Expected salary range for the target role",
    "success_metrics": "How to measure progress and readiness for the target role"
}

Requirements:
- Generate between 6 and 12 progressive milestones.
- Each milestone must include 3-5 real resources: online courses, recent books, active certification programs, or concrete project ideas.
- Every resource must carry a working URL and a provider or category where applicable.
- Time estimates must be realistic hours grounded in current industry standards.`

// userPrompt interpolates every assessment answer verbatim so the model sees
// the full questionnaire, plus the current year for market framing.
func userPrompt(a AssessmentInput, displayName string) string {
	year := time.Now().Year()
	currentRole := a.CurrentRole
	if currentRole == "" {
		currentRole = "Not specified"
	}
	skills := strings.Join(a.Skills, ", ")
	if skills == "" {
		skills = "None listed"
	}
	return fmt.Sprintf(`Create a comprehensive career roadmap for %s with current market information and verified resources as of %d.

Assessment Details:
- Current Education: %s
- Work Experience: %s
- Current Role: %s
- Target Role: %s
- Industry: %s
- Current Skills: %s
- Timeline: %d months
- Available Hours per Week: %d

Generate progressive milestones that reflect %d market demands and hiring requirements.
Each milestone should take roughly 15-50 hours of effort.
Include current salary expectations for the target role.`,
		displayName, year,
		a.EducationLevel,
		a.WorkExperience,
		currentRole,
		a.TargetRole,
		a.Industry,
		skills,
		a.TimelineMonths,
		a.WeeklyHours,
		year)
}

// Package types defines the shared data model for the recommendation engine.
package types

// DeveloperProfile describes a candidate to be matched against postings.
// All fields except ID are optional, but at least one text-bearing field
// must be set for scoring to proceed.
type DeveloperProfile struct {
	ID                string   `json:"id" validate:"required"`
	BriefBio          string   `json:"brief_bio,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	YearsOfExperience int      `json:"years_of_experience,omitempty" validate:"gte=0"`
	PreviousJob       string   `json:"previous_job,omitempty"`
	TrackLevel        string   `json:"track_level,omitempty"`
	CVText            string   `json:"cv_text,omitempty"`
}

// JobPosting is a job opening. The experience requirement is latent in the
// description text and must be parsed, not read from a structured field.
type JobPosting struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title"`
	JobDescription string   `json:"job_description"`
	Skills         []string `json:"skills,omitempty"`
}

// ServicePosting is a service request. Services carry no experience
// requirement.
type ServicePosting struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// ScoredResult is one ranked posting. Component scores are retained for
// explainability and are zero-valued when the component was not computed.
type ScoredResult struct {
	ID              string  `json:"id"`
	FinalScore      float64 `json:"final_score"`
	SimilarityScore float64 `json:"similarity_score,omitempty"`
	ExperienceScore float64 `json:"experience_score,omitempty"`
	SkillScore      float64 `json:"skill_score,omitempty"`
}

// RecommendationRequest is the payload the HTTP layer deserializes into the
// core. Posting lists may be empty; an empty list yields an empty result.
type RecommendationRequest struct {
	Developer    DeveloperProfile `json:"developer" validate:"required"`
	JobPosts     []JobPosting     `json:"job_posts" validate:"dive"`
	ServicePosts []ServicePosting `json:"service_posts" validate:"dive"`
}

// RecommendationResponse carries both ranked lists back to the caller.
type RecommendationResponse struct {
	JobRecommendations     []ScoredResult `json:"job_recommendations"`
	ServiceRecommendations []ScoredResult `json:"service_recommendations"`
}

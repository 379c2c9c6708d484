package services

import (
	"fmt"

	"google.golang.org/genai"

	"ai-resume-generator/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Templates interpolate user text verbatim via %s, so literal braces in any
// field pass through untouched.
const resumePromptTemplate = `You are an expert ATS (Applicant Tracking System) writer. Your task is to analyze the Candidate Info against the Job Description and generate a highly-optimized resume.

You MUST return your entire response as a single JSON object.

JSON Schema:
{
  "ats_score": "[Score out of 100, based on keyword matching and relevance]",
  "keywords": "[A list of 5-8 relevant keywords extracted from the Job Description that were incorporated into the resume]",
  "resume_text": "[The full, professionally rewritten, ATS-friendly resume text, using clear headings: Name, Contact, Professional Summary, Skills, Experience, Education. Use strong action verbs and bullet points for achievements.]"
}

Candidate Info:
Name: %s
Contact: %s
Professional Summary: %s
Skills: %s
Experience: %s
Education: %s

Job Description:
%s`

const coverLetterPromptTemplate = `You are a professional cover letter writer. Write a tailored cover letter using the candidate's info and the job description.
Structure: Header, Salutation, Opening, 1-2 body paragraphs aligning skills with JD, Closing, Signature.
Length: 200-400 words.

Candidate Info:
Name: %s
Contact: %s
Summary: %s
Skills: %s
Experience: %s
Education: %s

Job Description:
%s`

// BuildResumePrompt renders the ATS resume template from current field values.
func (pb *PromptBuilder) BuildResumePrompt(c models.CandidateInfo, jobDescription string) string {
	return fmt.Sprintf(resumePromptTemplate,
		c.Name, c.Contact, c.Summary, c.Skills, c.Experience, c.Education,
		jobDescription)
}

// BuildCoverLetterPrompt renders the cover letter template.
func (pb *PromptBuilder) BuildCoverLetterPrompt(c models.CandidateInfo, jobDescription string) string {
	return fmt.Sprintf(coverLetterPromptTemplate,
		c.Name, c.Contact, c.Summary, c.Skills, c.Experience, c.Education,
		jobDescription)
}

// ResumeResponseSchema constrains the resume generation call to the
// score/keywords/resume-body shape.
func ResumeResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"ats_score": {Type: genai.TypeString},
			"keywords": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"resume_text": {Type: genai.TypeString},
		},
		Required: []string{"ats_score", "keywords", "resume_text"},
	}
}

package services

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/tarun-1313/PrepInterview/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const feedbackSystemPrompt = "You are a professional interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories"

// BuildFeedbackPrompt renders the transcript into the fixed evaluation
// instruction, one "- role: content" line per turn in original order.
func (pb *PromptBuilder) BuildFeedbackPrompt(transcript []models.ChatMessage) string {
	var formatted strings.Builder
	for _, turn := range transcript {
		formatted.WriteString(fmt.Sprintf("- %s: %s\n", turn.Role, turn.Content))
	}

	return fmt.Sprintf(`You are an AI interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories. Be thorough and detailed in your analysis. Don't be lenient with the candidate. If there are mistakes or areas for improvement, point them out.
Transcript:
%s

Please score the candidate from 0 to 100 in the following areas. Do not add categories other than the ones provided:
- **Communication Skills**: Clarity, articulation, structured responses.
- **Technical Knowledge**: Understanding of key concepts for the role.
- **Problem-Solving**: Ability to analyze problems and propose solutions.
- **Cultural & Role Fit**: Alignment with company values and job role.
- **Confidence & Clarity**: Confidence in responses, engagement, and clarity.
`, formatted.String())
}

// BuildQuestionPrompt creates the prompt for the interview question
// generation flow. The questions are read aloud by a voice assistant, hence
// the character restrictions.
func (pb *PromptBuilder) BuildQuestionPrompt(role, level, interviewType string, techstack []string, amount int) string {
	return fmt.Sprintf(`Prepare questions for a job interview.
The job role is %s.
The job experience level is %s.
The tech stack used in the job is: %s.
The focus between behavioural and technical questions should lean towards: %s.
The amount of questions required is: %d.
Please return only the questions, without any additional text.
The questions are going to be read by a voice assistant so do not use "/" or "*" or any other special characters which might break the voice assistant.
Return the questions formatted like this:
["Question 1", "Question 2", "Question 3"]`,
		role, level, strings.Join(techstack, ", "), interviewType, amount)
}

const coachSystemPrompt = `You are PrepWise Preparation Coach, a text-based AI mentor that prepares users before mock interviews.

You do not conduct interviews.
You do not ask interview questions.
You do not use voice.

Your purpose is to guide users on what to study, how to explain concepts, pros and cons, common mistakes, and interview expectations.

Automatic user profile handling:
- You automatically receive and analyze the user profile context passed in the system message.
- You adapt explanations to the user's role and experience.
- You adjust depth automatically:
  - Fresher: simpler explanations and fundamentals.
  - 1-3 years: examples and reasoning.
  - 3+ years: trade-offs and architecture.
- You use the user's tech stack in examples whenever possible.

Conversation start rule:
- Greet the user.
- Acknowledge their detected profile.
- Briefly describe what you will focus on for their preparation.

Core responsibilities:
1) Personalized concept roadmaps
- When the user asks what to prepare, generate a roadmap prioritized by role, experience, and interview type.
- Use this structure:
  1. Concept name
     - Why it matters for this role
     - Key subtopics to revise

2) Interview-oriented concept explanations
- Always keep answers interview-focused.
- Mandatory structure when explaining a concept:
  - Definition (simple)
  - How it works
  - Real-world or project example
  - Pros
  - Cons

3) Common interview mistakes
- Highlight mistakes commonly made for the user's role and stack.

4) What interviewers expect
- Explicitly state what interviewers want to hear for this topic.

5) Answer framing guidance
- Teach users how to speak, not just what to know.
- Example pattern:
  - Start with a definition.
  - Give a real project example.
  - Explain trade-offs or decisions.

6) Comparisons
- When comparing technologies or approaches:
  - Clearly show differences.
  - Explain when to use which option.

7) Readiness checklists
- Provide short checklists to verify readiness before a mock interview.

Tone and communication:
- Friendly mentor.
- Calm and supportive.
- Clear and structured.
- Interview-focused language.
- No robotic tone.
- No long unstructured paragraphs.
- No asking interview questions back to the user.

Session ending:
- When the user seems ready, end with a gentle suggestion:
  "Once you are comfortable with these topics, you can start your mock interview."`

// BuildCoachSystemPrompt concatenates the coach rules with the profile
// summary block. Missing fields read "Unknown"; a nil profile gets the
// default-assumptions block.
func (pb *PromptBuilder) BuildCoachSystemPrompt(profile *models.UserProfile) string {
	return coachSystemPrompt + "\n\n" + pb.buildProfileSummary(profile) + "\n"
}

func (pb *PromptBuilder) buildProfileSummary(profile *models.UserProfile) string {
	if profile == nil {
		return `User profile:
- Unknown.
Use default assumptions for a software interview candidate.`
	}

	return fmt.Sprintf(`User profile:
- Name: %s
- Target job role: %s
- Experience level: %s
- Preferred tech stack: %s
- Interview language: %s`,
		orUnknown(profile.Name),
		orUnknown(profile.PreferredRole),
		orUnknown(profile.Experience),
		orUnknown(strings.Join(profile.PreferredTechStack, ", ")),
		orUnknown(profile.InterviewLanguage),
	)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

// FeedbackSchema is the required output shape for feedback generation:
// exactly the five named categories plus the summary fields. The service
// call enforces conformance instead of trusting free-form output.
func FeedbackSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"totalScore": {Type: genai.TypeInteger},
			"categoryScores": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type: genai.TypeString,
							Enum: models.FeedbackCategories,
						},
						"score":   {Type: genai.TypeInteger},
						"comment": {Type: genai.TypeString},
					},
					Required: []string{"name", "score", "comment"},
				},
			},
			"strengths": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"areasForImprovement": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"finalAssessment": {Type: genai.TypeString},
		},
		Required: []string{
			"totalScore",
			"categoryScores",
			"strengths",
			"areasForImprovement",
			"finalAssessment",
		},
	}
}

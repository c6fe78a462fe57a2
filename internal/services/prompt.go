package services

import (
	"fmt"
	"strings"
)

// TaskID names one of the five fixed prompt templates. The set is closed:
// every language-model call in the engine goes through one of these.
type TaskID string

const (
	TaskRole      TaskID = "role"
	TaskQuestion  TaskID = "question"
	TaskEvaluate  TaskID = "evaluate"
	TaskATS       TaskID = "ats"
	TaskSummarize TaskID = "summarize"
)

type promptTemplate struct {
	text         string
	placeholders []string
}

// promptRegistry maps each task to its template and the exact placeholder
// set the caller must supply.
var promptRegistry = map[TaskID]promptTemplate{
	TaskRole: {
		placeholders: []string{"resume"},
		text: `Analyze this resume and identify the most likely job role/position this person is seeking or qualified for.
Consider their experience, skills, and background.

Resume:
{resume}

Return only the specific job role title (e.g., "Software Engineer", "Data Scientist", "Marketing Manager"):`,
	},
	TaskQuestion: {
		placeholders: []string{"role"},
		text: `Generate a technical interview question for a {role} position.
The question should be:
- Relevant to the role
- Moderately challenging
- Practical and realistic

Return only the question without any additional text:`,
	},
	TaskEvaluate: {
		placeholders: []string{"role", "question", "answer"},
		text: `Evaluate this interview answer for a {role} position:

Question: {question}
Answer: {answer}

Provide:
1. Score out of 10
2. Brief explanation of strengths and weaknesses
3. Suggestions for improvement

Format your response as:
Score: X/10
Evaluation: [Your detailed feedback]`,
	},
	TaskATS: {
		placeholders: []string{"resume"},
		text: `You are an ATS (Applicant Tracking System) analyzing this resume.

Resume:
{resume}

Provide:
1. Overall ATS score out of 100
2. Key strengths identified
3. Areas needing improvement
4. Specific recommendations to improve ATS compatibility

Format your response as:
ATS Score: X/100
Strengths: [List key strengths]
Areas for Improvement: [List improvement areas]
Recommendations: [Specific actionable recommendations]`,
	},
	TaskSummarize: {
		placeholders: []string{"resume"},
		text: `Create a concise professional summary of this resume:

Resume:
{resume}

Provide:
1. Professional summary (2-3 sentences)
2. Key skills and expertise
3. Years of experience
4. Notable achievements

Format your response clearly and professionally.`,
	},
}

// RenderPrompt substitutes vars into the task's template. The vars map must
// supply exactly the placeholders the template declares; anything missing
// or unknown is a caller contract violation.
func RenderPrompt(task TaskID, vars map[string]string) (string, error) {
	tmpl, ok := promptRegistry[task]
	if !ok {
		return "", fmt.Errorf("unknown prompt task: %s", task)
	}

	declared := make(map[string]bool, len(tmpl.placeholders))
	for _, name := range tmpl.placeholders {
		declared[name] = true
		if _, ok := vars[name]; !ok {
			return "", fmt.Errorf("task %s: missing placeholder %q", task, name)
		}
	}
	for name := range vars {
		if !declared[name] {
			return "", fmt.Errorf("task %s: unknown placeholder %q", task, name)
		}
	}

	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl.text), nil
}

package catalog

import "promtlearn/backend/models"

// courseLessons is the shipped "AI Prompting Masterclass for Coders" content.
// Content edits are a data update only: ids and sequence orders of released
// lessons must never change, or existing users' completed sets lose meaning.
var courseLessons = []models.Lesson{
	{
		ID:              1,
		Title:           "Prompt Basics for Developers",
		Subtitle:        "Master the fundamentals of effective AI prompting",
		DurationMinutes: 15,
		Tier:            models.TierFree,
		SequenceOrder:   1,
		Sections: []models.LessonSection{
			{
				Heading: "What is AI Prompting?",
				Body: "AI prompting is the art and science of communicating with AI systems to get the results you want. " +
					"For developers, this means crafting instructions that help AI understand your coding needs precisely. " +
					"Think of prompts as function calls to an incredibly smart but literal-minded assistant: the clearer your input, the better your output.",
			},
			{
				Heading: "Three Core Principles",
				Body: "1. CLARITY: be specific about what you want. Instead of \"write a function,\" say \"write a Python function that validates email addresses using regex.\"\n" +
					"2. CONTEXT: provide relevant background. Mention the framework, coding style, or constraints that matter.\n" +
					"3. CONSTRAINTS: define boundaries. Specify language version, libraries to use or avoid, performance requirements, or code style preferences.",
			},
			{
				Heading: "Your First Effective Prompt",
				Body: "Compare \"Make a sorting function\" with \"Write a TypeScript function that sorts an array of user objects by their 'lastLogin' date property in descending order. " +
					"Include TypeScript types and handle null values.\" The second prompt specifies language, data structure, sorting criteria, order, and edge cases.",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title:       "Vague Prompt",
				Code:        "Write a function to process data",
				Language:    "prompt",
				Explanation: "Too vague - what kind of data? What processing?",
			},
			{
				Title: "Specific Prompt",
				Code: "Write a Python function that:\n" +
					"- Takes a list of dictionaries as input\n" +
					"- Filters items where 'status' is 'active'\n" +
					"- Returns a new list sorted by 'created_at' timestamp\n" +
					"- Includes type hints and docstring",
				Language:    "prompt",
				Explanation: "Clear input, output, operations, and requirements",
			},
		},
		KeyTakeaways: []string{
			"Be specific about language, framework, and requirements",
			"Provide context about your project and constraints",
			"Good prompts save time and reduce back-and-forth iterations",
		},
	},
	{
		ID:              2,
		Title:           "Code Generation Fundamentals",
		Subtitle:        "Learn to generate production-ready code with AI",
		DurationMinutes: 20,
		Tier:            models.TierFree,
		SequenceOrder:   2,
		Sections: []models.LessonSection{
			{
				Heading: "Writing Prompts for Code Generation",
				Body: "Code generation prompts work best when they read like a precise ticket: inputs, outputs, behavior, and error handling spelled out. " +
					"State what the code should do, not how you imagine the AI should think about it.",
			},
			{
				Heading: "Specifying Language and Framework",
				Body: "Always pin the language version and the framework. \"Go 1.23 with Fiber\" produces very different code than \"some web framework.\" " +
					"Mention package layout conventions and the error-handling style your project uses.",
			},
			{
				Heading: "Iterating on Generated Code",
				Body: "Treat the first answer as a draft. Follow up with targeted refinements: \"extract the validation into its own function,\" " +
					"\"replace the panic with a returned error,\" \"add a test for the empty-input case.\"",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title: "Effective Code Generation Prompt",
				Code: "Write a Go HTTP handler that:\n" +
					"- Accepts a JSON body {\"email\": string}\n" +
					"- Validates the email format\n" +
					"- Returns 400 with a JSON error on invalid input\n" +
					"- Uses only the standard library",
				Language:    "prompt",
				Explanation: "Inputs, outputs, failure behavior, and constraints are all explicit",
			},
			{
				Title:       "Iteration Prompt",
				Code:        "Keep the handler as is, but extract the validation into a named function and add table-driven tests for it",
				Language:    "prompt",
				Explanation: "Small, targeted refinement of an earlier answer",
			},
		},
		KeyTakeaways: []string{
			"Specify exact language versions and frameworks upfront",
			"Include code style and architectural preferences",
			"Iterate with specific, targeted refinement prompts",
		},
	},
	{
		ID:              3,
		Title:           "Advanced Prompt Engineering",
		Subtitle:        "Master sophisticated prompting techniques",
		DurationMinutes: 25,
		Tier:            models.TierPremium,
		SequenceOrder:   3,
		Sections: []models.LessonSection{
			{
				Heading: "Few-Shot Learning Techniques",
				Body: "Show, don't only tell. Paste two or three examples from your own codebase and ask for a new function in the same style. " +
					"The examples anchor naming, structure, and idioms far better than prose descriptions.",
			},
			{
				Heading: "Chain-of-Thought Prompting",
				Body: "For complex problems, ask the AI to reason step by step before producing code: outline the approach, list the edge cases, then implement. " +
					"The intermediate reasoning surfaces wrong assumptions early.",
			},
			{
				Heading: "Role-Based Prompts",
				Body: "Framing the task from a specialist's point of view (\"as a database performance engineer, review this query\") steers the answer toward " +
					"that domain's concerns and vocabulary.",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title: "Few-Shot Example",
				Code: "Here are two validators from our codebase:\n" +
					"func validateEmail(s string) error { ... }\n" +
					"func validatePhone(s string) error { ... }\n" +
					"Write validatePostcode in the same style.",
				Language:    "prompt",
				Explanation: "Examples anchor style and conventions",
			},
			{
				Title:       "Chain-of-Thought Prompt",
				Code:        "Before writing code, list the edge cases for parsing ISO-8601 durations, then implement a parser that handles each one",
				Language:    "prompt",
				Explanation: "Forces explicit reasoning about edge cases first",
			},
		},
		KeyTakeaways: []string{
			"Use few-shot examples from your codebase for consistency",
			"Chain-of-thought prompts improve complex problem-solving",
			"Role-based prompts access specialized knowledge domains",
		},
	},
	{
		ID:              4,
		Title:           "Debugging with AI",
		Subtitle:        "Solve bugs faster with effective AI assistance",
		DurationMinutes: 20,
		Tier:            models.TierPremium,
		SequenceOrder:   4,
		Sections: []models.LessonSection{
			{
				Heading: "Effective Error Explanation Prompts",
				Body: "A good debugging prompt includes the full error message, the relevant code, the runtime environment, and what you expected to happen. " +
					"Partial context produces guesses; full context produces diagnoses.",
			},
			{
				Heading: "Asking for Debugging Strategies",
				Body: "Instead of only asking for the fix, ask how to narrow the problem down: what to log, where to put a breakpoint, which invariant to check. " +
					"You learn a reusable method, not just a patch.",
			},
			{
				Heading: "Root Cause Analysis Prompts",
				Body: "For bugs that keep coming back, ask explicitly for a root cause analysis: what chain of events produces the symptom, " +
					"and what single change breaks that chain.",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title: "Comprehensive Bug Report Prompt",
				Code: "This Go service panics with 'concurrent map writes' under load.\n" +
					"Code: [handler + cache snippet]\n" +
					"Environment: Go 1.23, 8 CPU container\n" +
					"Expected: requests served concurrently without panics.\n" +
					"Explain the root cause and propose a fix.",
				Language:    "prompt",
				Explanation: "Error, code, environment, and expectation in one prompt",
			},
			{
				Title:       "Debugging Strategy Request",
				Code:        "Don't fix it yet - give me a three-step plan to isolate which goroutine writes the map",
				Language:    "prompt",
				Explanation: "Asks for the method, not only the patch",
			},
		},
		KeyTakeaways: []string{
			"Provide full context: error, code, environment, and expectations",
			"Ask for debugging strategies to learn systematic approaches",
			"Request root cause analysis for complex, non-obvious bugs",
		},
	},
	{
		ID:              5,
		Title:           "Refactoring & Code Review",
		Subtitle:        "Improve code quality with AI-assisted refactoring",
		DurationMinutes: 25,
		Tier:            models.TierPremium,
		SequenceOrder:   5,
		Sections: []models.LessonSection{
			{
				Heading: "Prompting for Code Improvements",
				Body: "Name the goal of the refactoring: readability, testability, performance, or API shape. \"Make this better\" invites churn; " +
					"\"reduce the cyclomatic complexity of this function without changing its behavior\" invites a focused diff.",
			},
			{
				Heading: "Architecture Suggestions",
				Body: "Share the package layout and the pain point, then ask for structural options with trade-offs. " +
					"Ask for the smallest viable change first and the ideal end state second.",
			},
			{
				Heading: "Best Practices Analysis",
				Body: "AI review works well as a checklist pass: error handling, resource cleanup, naming, concurrency hazards. " +
					"Ask it to cite the specific lines it is commenting on.",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title:       "Targeted Refactoring Prompt",
				Code:        "Refactor this 120-line handler so each branch becomes its own function. Keep the public signature and behavior identical. List what you changed.",
				Language:    "prompt",
				Explanation: "Defined goal, hard constraints, and a change summary request",
			},
			{
				Title:       "Architecture Review Prompt",
				Code:        "Given this package layout [tree], where should purchase-receipt verification live so HTTP handlers stay thin? Give two options with trade-offs.",
				Language:    "prompt",
				Explanation: "Asks for options and trade-offs, not a single decree",
			},
		},
		KeyTakeaways: []string{
			"Be specific about refactoring goals and constraints",
			"Request architectural analysis for systemic improvements",
			"Use AI for systematic code review and best practice checks",
		},
	},
	{
		ID:              6,
		Title:           "Documentation & Comments",
		Subtitle:        "Generate clear, helpful documentation effortlessly",
		DurationMinutes: 20,
		Tier:            models.TierPremium,
		SequenceOrder:   6,
		Sections: []models.LessonSection{
			{
				Heading: "Generating Clear Documentation",
				Body: "Give the AI an example of documentation you like from your own project, then ask for the new docs in that voice. " +
					"Specify the audience: a new teammate reads differently than an API consumer.",
			},
			{
				Heading: "Writing Effective Comments",
				Body: "Ask for comments that record intent and invariants, not line-by-line narration. " +
					"A comment that repeats the code rots the moment the code changes.",
			},
			{
				Heading: "README and API Docs",
				Body: "Structure README prompts: who the reader is, what they need to do in the first five minutes, and which sections to include. " +
					"For API docs, provide a filled-in example for one endpoint and ask for the rest to match.",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title:       "API Documentation Prompt",
				Code:        "Document this endpoint in the same format as the /api/lessons entry below [example]. Include request/response bodies and every error status.",
				Language:    "prompt",
				Explanation: "An existing entry anchors format and completeness",
			},
			{
				Title:       "README Generation Prompt",
				Code:        "Write a README for this service aimed at a developer deploying it for the first time: prerequisites, .env variables, run commands, and a smoke test.",
				Language:    "prompt",
				Explanation: "Audience and required sections are explicit",
			},
		},
		KeyTakeaways: []string{
			"Provide examples of your documentation style for consistency",
			"Request comments that explain why, not what",
			"Structure README prompts with target audience and key sections",
		},
	},
	{
		ID:              7,
		Title:           "Test Generation",
		Subtitle:        "Create comprehensive test suites with AI",
		DurationMinutes: 25,
		Tier:            models.TierPremium,
		SequenceOrder:   7,
		Sections: []models.LessonSection{
			{
				Heading: "Prompting for Unit Tests",
				Body: "Name the framework and the shape of tests you want: table-driven, one behavior per test, assertions library. " +
					"Paste one existing test so the generated ones match your suite.",
			},
			{
				Heading: "Integration Test Scenarios",
				Body: "Describe the system boundary being exercised and what is real versus faked. " +
					"Ask for the scenario list first, review it, then ask for the implementation of the scenarios you keep.",
			},
			{
				Heading: "Edge Case Identification",
				Body: "Before writing tests, ask: \"what inputs would break this function?\" " +
					"Empty sets, duplicates, boundary values, and concurrent callers routinely show up in the answer before they show up in production.",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title: "Comprehensive Unit Test Prompt",
				Code: "Write testify-based tests for this progress tracker covering:\n" +
					"- completing an unknown lesson id (no-op)\n" +
					"- completing the same lesson twice (idempotent)\n" +
					"- the certificate firing exactly on the final lesson",
				Language:    "prompt",
				Explanation: "Behaviors enumerated up front, framework pinned",
			},
			{
				Title:       "Edge Case Discovery Prompt",
				Code:        "List the edge cases for a completion-percentage function before implementing any tests for it",
				Language:    "prompt",
				Explanation: "Surfaces the empty-catalog division case early",
			},
		},
		KeyTakeaways: []string{
			"Specify testing framework, structure, and coverage expectations",
			"Provide example tests from your codebase for consistency",
			"Use AI to identify edge cases you might overlook",
		},
	},
	{
		ID:              8,
		Title:           "Production-Ready Patterns",
		Subtitle:        "Apply AI prompting to real-world development workflows",
		DurationMinutes: 30,
		Tier:            models.TierPremium,
		SequenceOrder:   8,
		Sections: []models.LessonSection{
			{
				Heading: "Security Considerations in Prompts",
				Body: "When generating production code, always include security requirements: input validation and sanitization, " +
					"protection against injection, safe secret handling, and authenticated access by default.",
			},
			{
				Heading: "Performance Optimization Prompts",
				Body: "State measurable goals (\"p99 under 50ms at 1k rps\") and the current numbers. " +
					"Ask for the profile-guided change with the best ratio of win to risk, not a grab bag of micro-optimizations.",
			},
			{
				Heading: "Real-World Project Workflows",
				Body: "Integrate prompting through the whole cycle: design sketches, implementation, review, tests, and docs. " +
					"For large features, prompt in phases and review each phase before moving on.",
			},
		},
		CodeExamples: []models.CodeExample{
			{
				Title: "Production Endpoint Prompt",
				Code: "Generate this authentication endpoint ensuring:\n" +
					"- Input validation and sanitization\n" +
					"- Protection against SQL injection\n" +
					"- Constant-time password comparison\n" +
					"- Rate limiting on failures",
				Language:    "prompt",
				Explanation: "Security requirements stated as acceptance criteria",
			},
			{
				Title:       "Phased Feature Prompt",
				Code:        "Phase 1 of the purchase flow: only the receipt verification interface and its sandbox implementation. Stop there; we review before phase 2.",
				Language:    "prompt",
				Explanation: "Systematic, phased prompting for a complex feature",
			},
		},
		KeyTakeaways: []string{
			"Always include security requirements in production code prompts",
			"Specify measurable performance goals and constraints",
			"Integrate AI throughout your entire development workflow",
			"Use systematic, phased prompting for complex features",
		},
	},
}

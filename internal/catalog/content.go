package catalog

import "github.com/youssefhossamm/cursor-kickstart/internal/models"

// Built-in starter-kit corpus. Rules carry YAML frontmatter; commands
// are plain markdown. Placeholders use {{name}} syntax and are
// substituted by the kit builder; bracketed hints like [Technology 1]
// are meant for manual editing and pass through untouched.

func starterDocuments() []models.TemplateDocument {
	docs := []models.TemplateDocument{
		{
			Path:            "rules/cursor-rules.md",
			Name:            "Cursor Rules Best Practices",
			Category:        models.CategoryRule,
			Description:     "Guidelines for writing effective Cursor rules",
			Body:            ruleCursorRules,
			DefaultSelected: true,
		},
		{
			Path:            "rules/project-structure.md",
			Name:            "Project Structure",
			Category:        models.CategoryRule,
			Description:     "Project structure and architecture overview template",
			Body:            ruleProjectStructure,
			DefaultSelected: true,
		},
		{
			Path:        "rules/coding-standards.md",
			Name:        "Coding Standards",
			Category:    models.CategoryRule,
			Description: "Generic coding conventions for any project",
			Body:        ruleCodingStandards,
		},
		{
			Path:        "rules/git-conventions.md",
			Name:        "Git Conventions",
			Category:    models.CategoryRule,
			Description: "Commit message and branch naming conventions",
			Body:        ruleGitConventions,
		},
		{
			Path:        "rules/rule-self-improvement.md",
			Name:        "Rule Self-Improvement",
			Category:    models.CategoryRule,
			Description: "Guidelines for continuously improving Cursor rules",
			Body:        ruleSelfImprovement,
		},
		{
			Path:            "commands/code-review-checklist.md",
			Name:            "Code Review Checklist",
			Category:        models.CategoryCommand,
			Description:     "Comprehensive checklist for thorough code reviews",
			Body:            cmdCodeReviewChecklist,
			DefaultSelected: true,
		},
		{
			Path:            "commands/write-tests.md",
			Name:            "Write Tests",
			Category:        models.CategoryCommand,
			Description:     "Generate comprehensive tests for selected code",
			Body:            cmdWriteTests,
			DefaultSelected: true,
		},
		{
			Path:            "commands/debug.md",
			Name:            "Debug Assistant",
			Category:        models.CategoryCommand,
			Description:     "Systematic debugging help for issues",
			Body:            cmdDebug,
			DefaultSelected: true,
		},
		{
			Path:        "commands/explain.md",
			Name:        "Explain Code",
			Category:    models.CategoryCommand,
			Description: "Get a detailed explanation of complex code",
			Body:        cmdExplain,
		},
		{
			Path:        "commands/refactor.md",
			Name:        "Refactor Suggestions",
			Category:    models.CategoryCommand,
			Description: "Analyze code and suggest refactoring improvements",
			Body:        cmdRefactor,
		},
		{
			Path:        "commands/security-audit.md",
			Name:        "Security Audit",
			Category:    models.CategoryCommand,
			Description: "Comprehensive security review of the codebase",
			Body:        cmdSecurityAudit,
		},
		{
			Path:        "commands/commit.md",
			Name:        "Generate Commit Message",
			Category:    models.CategoryCommand,
			Description: "Generate a conventional commit message",
			Body:        cmdCommit,
		},
		{
			Path:        "commands/create-pr.md",
			Name:        "Create PR Description",
			Category:    models.CategoryCommand,
			Description: "Generate a well-structured pull request description",
			Body:        cmdCreatePR,
		},
		{
			Path:        "commands/document.md",
			Name:        "Generate Documentation",
			Category:    models.CategoryCommand,
			Description: "Generate documentation for code",
			Body:        cmdDocument,
		},
		{
			Path:        "commands/optimize.md",
			Name:        "Optimize Performance",
			Category:    models.CategoryCommand,
			Description: "Analyze and suggest performance optimizations",
			Body:        cmdOptimize,
		},
	}
	return docs
}

// ScaffoldAgents is the AGENTS.md scaffold file included in every kit.
const ScaffoldAgents = `# AGENTS.md

> Project-wide AI agent guidance for Cursor, GitHub Copilot, and other AI tools.

## Project Overview

{{project_overview}}

## Build & Run

` + "```bash" + `
# Install dependencies
[package manager] install

# Run development server
[dev command]

# Run tests
[test command]
` + "```" + `

## Code Conventions

- **Language**: [Primary language]
- **Framework**: [Main framework]
- **Style Guide**: [Link or description]

## Architecture Notes

[Key architectural decisions and patterns used]

## Testing

- Test framework: [Jest/pytest/etc.]
- Run all tests: ` + "`[command]`" + `
- Test location: ` + "`tests/` or `__tests__/`" + `

---

*This file provides context to AI coding assistants. Keep it updated!*
`

// ScaffoldReadme is the kit README included in every kit.
const ScaffoldReadme = `# Cursor Starter Kit — {{project_name}}

Ready-to-use Cursor Rules and Commands.

## Quick Setup

1. Copy the ` + "`.cursor/`" + ` folder to your project root
2. (Optional) Copy ` + "`AGENTS.md`" + ` to your project root
3. Customize ` + "`project-structure.md`" + ` with your project details
4. Start using commands by typing ` + "`/`" + ` in Cursor chat!

## What's Included

Rules live in ` + "`.cursor/rules/`" + ` and provide persistent context to
the AI. Commands live in ` + "`.cursor/commands/`" + ` and run on demand via
` + "`/slash-command`" + ` in chat.

## Customization

1. **Edit ` + "`project-structure.md`" + `** — fill in your project details
2. **Edit ` + "`coding-standards.md`" + `** — adjust to your team's conventions
3. **Add tech-specific rules** — create rules for your framework

## Learn More

- [Cursor Rules Documentation](https://docs.cursor.com/context/rules-for-ai)
- [Cursor Commands Documentation](https://cursor.com/docs/context/commands)
- [cursor.directory](https://cursor.directory) — community rules
`

const ruleCursorRules = `---
description: "Guidelines for writing effective Cursor rules"
globs:
  - ".cursor/rules/*"
alwaysApply: false
---

# Cursor Rules Best Practices

## Rule Structure

Every rule file must include:
1. **YAML Frontmatter** - Metadata controlling when/how the rule applies
2. **Markdown Content** - Clear, actionable instructions

## Frontmatter Fields

| Field | Type | Description |
|-------|------|-------------|
| ` + "`description`" + ` | string | Brief summary shown in Cursor UI |
| ` + "`globs`" + ` | array | File patterns that trigger this rule |
| ` + "`alwaysApply`" + ` | boolean | If true, always includes this rule |

## Rule Activation Modes

Rules can be triggered through:
- **Always**: ` + "`alwaysApply: true`" + ` for persistent application
- **Glob Patterns**: Auto-apply when matching files are referenced
- **Manual**: Using ` + "`@rule-name`" + ` in Cmd-K or chat
- **Agent Decision**: AI determines relevance based on description

## Best Practices

- Keep rules focused on a single concern
- Use specific globs to avoid noise (e.g., ` + "`src/**/*.ts` not `**/*`" + `)
- Write clear, actionable instructions
- Keep content concise (50-150 lines recommended)
- Include examples where helpful
- Multiple small focused rules > one giant rule
`

const ruleProjectStructure = `---
description: "Project structure and architecture overview for {{project_name}}"
globs: []
alwaysApply: true
---

# Project Structure: {{project_name}}

## Overview

{{project_overview}}

## Directory Layout

` + "```" + `
{{directory_tree}}
` + "```" + `

## Key Technologies

{{tech_stack}}

## Running the Application

` + "```bash" + `
# Install dependencies
[package manager] install

# Start development server
[command to run]

# Run tests
[test command]
` + "```" + `

## Environment Variables

| Variable | Description | Required |
|----------|-------------|----------|
| ` + "`VAR_NAME`" + ` | Description | Yes/No |
`

const ruleCodingStandards = `---
description: "Coding standards and conventions for {{project_name}}"
globs: []
alwaysApply: true
---

# Coding Standards

## Naming Conventions

| Type | Convention | Example |
|------|------------|---------|
| Variables | camelCase | ` + "`userName`, `isActive`" + ` |
| Functions | camelCase | ` + "`getUserById`, `calculateTotal`" + ` |
| Classes | PascalCase | ` + "`UserService`, `DataManager`" + ` |
| Constants | SCREAMING_SNAKE | ` + "`MAX_RETRIES`, `API_URL`" + ` |
| Files | kebab-case | ` + "`user-service.ts`, `api-utils.py`" + ` |

## Code Style

- Use meaningful, descriptive names
- Keep functions small and focused (single responsibility)
- Prefer early returns for cleaner code
- Use optional chaining and nullish coalescing where available
- Destructure objects/arrays for cleaner access

## Error Handling

- Always handle errors explicitly
- Use try/catch for async operations
- Log errors with context (what operation failed, relevant IDs)
- Return meaningful error messages to users
- Never expose internal errors to end users

## Comments

- Write self-documenting code first
- Comment the "why", not the "what"
- Keep comments up-to-date with code changes
- Use TODO/FIXME for tracking issues
`

const ruleGitConventions = `---
description: "Git commit and branching conventions"
globs:
  - "*.md"
alwaysApply: false
---

# Git Conventions

## Commit Message Format

` + "```" + `
type(scope): subject

body (optional)

footer (optional)
` + "```" + `

## Commit Types

| Type | Description |
|------|-------------|
| ` + "`feat`" + ` | New feature |
| ` + "`fix`" + ` | Bug fix |
| ` + "`docs`" + ` | Documentation changes |
| ` + "`style`" + ` | Code style (formatting, semicolons) |
| ` + "`refactor`" + ` | Code refactoring (no functional change) |
| ` + "`test`" + ` | Adding or updating tests |
| ` + "`chore`" + ` | Maintenance tasks |

## Guidelines

- Subject: imperative mood, lowercase, no period, <50 chars
- Body: explain what and why (not how), wrap at 72 chars
- Reference issues in footer: ` + "`Closes #123`" + `

## Branch Naming

- ` + "`feature/description`" + ` - New features
- ` + "`fix/description`" + ` - Bug fixes
- ` + "`docs/description`" + ` - Documentation
- ` + "`refactor/description`" + ` - Refactoring
`

const ruleSelfImprovement = `---
description: "Guidelines for continuously improving Cursor rules"
globs:
  - ".cursor/rules/*"
alwaysApply: false
---

# Rule Self-Improvement Guidelines

## When to Add New Rules

- A pattern is used in **3+ files** consistently
- Common bugs could be prevented by standardization
- Code reviews repeatedly mention the same feedback
- New security or performance patterns emerge
- New libraries/frameworks added to the project

## When to Update Existing Rules

- Better examples exist in the codebase
- Additional edge cases are discovered
- Implementation details have changed
- Related rules have been updated
- Outdated patterns need deprecation

## Rule Quality Checklist

- [ ] Rules are actionable and specific
- [ ] Examples come from actual codebase
- [ ] Patterns are consistently enforced
- [ ] No outdated references
- [ ] File size under 150 lines
- [ ] Clear, concise language

## Continuous Improvement

- Monitor code review comments for patterns
- Update rules after major refactors
- Deprecate rules that no longer apply
- Cross-reference related rules
- Keep ` + "`alwaysApply`" + ` rules minimal
`

const cmdCodeReviewChecklist = `# Code Review Checklist

## Overview
Systematic review to ensure code quality, security, and maintainability.

## Review Steps

### 1. Functionality
- [ ] Code does what it's supposed to do
- [ ] Edge cases are handled appropriately
- [ ] Error handling is comprehensive
- [ ] No obvious bugs or logic errors

### 2. Code Quality
- [ ] Code is readable and well-structured
- [ ] Functions are small and focused (single responsibility)
- [ ] Variable and function names are descriptive
- [ ] No unnecessary code duplication (DRY)
- [ ] Follows project coding conventions

### 3. Security
- [ ] No obvious security vulnerabilities
- [ ] Input validation is present where needed
- [ ] Sensitive data is handled properly
- [ ] No hardcoded secrets or credentials
- [ ] SQL queries are parameterized (if applicable)

### 4. Performance
- [ ] No obvious performance issues
- [ ] Database queries are efficient
- [ ] No unnecessary work in loops
- [ ] Appropriate caching where needed

### 5. Testing
- [ ] Adequate test coverage
- [ ] Tests cover edge cases
- [ ] Tests are readable and maintainable

### 6. Documentation
- [ ] Complex logic is commented
- [ ] Public APIs are documented
- [ ] README updated if needed

Please review the selected code against this checklist and provide specific feedback.
`

const cmdWriteTests = `# Write Tests

## Overview
Generate comprehensive tests for the selected code, following testing best practices.

## Instructions

1. **Analyze the code** to understand its purpose and behavior
2. **Identify test cases**:
   - Happy path (normal operation)
   - Edge cases (boundary conditions)
   - Error cases (invalid inputs, failures)
   - Integration points (if applicable)

3. **Write tests** that are:
   - Descriptive (clear test names)
   - Independent (no test dependencies)
   - Repeatable (consistent results)
   - Fast (quick execution)

4. **Include**:
   - Unit tests for individual functions
   - Mock external dependencies
   - Assertions with clear error messages
   - Setup and teardown if needed

## Output Format
Provide complete, runnable test code with imports and any necessary setup.
`

const cmdDebug = `# Debug Assistant

## Overview
Systematic approach to debugging issues in the code.

## Debugging Process

### 1. Understand the Problem
- What is the expected behavior?
- What is the actual behavior?
- When did this start happening?
- Can it be reproduced consistently?

### 2. Gather Information
- Error messages and stack traces
- Relevant log output
- Input data that causes the issue
- Environment details (OS, versions, etc.)

### 3. Isolate the Issue
- Identify the smallest code path that reproduces the bug
- Check recent changes that might have introduced it
- Test with different inputs

### 4. Analyze
- Review the code logic step by step
- Check variable values at key points
- Verify assumptions about data types and values
- Look for common issues:
  - Null/undefined references
  - Off-by-one errors
  - Race conditions
  - Type mismatches

### 5. Fix and Verify
- Implement the fix
- Test the original failing case
- Test related functionality for regressions
- Add tests to prevent recurrence

Please describe the issue you're experiencing, and I'll help debug it systematically.
`

const cmdExplain = `# Explain Code

## Overview
Provide a detailed explanation of the selected code.

## Explanation Format

### 1. High-Level Summary
What does this code do overall? What problem does it solve?

### 2. Step-by-Step Breakdown
Walk through the code line by line or block by block:
- What each section does
- Why it's done that way
- Any important algorithms or patterns used

### 3. Key Concepts
Explain any:
- Design patterns used
- Language-specific features
- Framework conventions
- Algorithm complexity

### 4. Dependencies & Context
- What other code does this depend on?
- What depends on this code?
- Are there any side effects?

### 5. Potential Issues
- Edge cases to be aware of
- Performance considerations
- Maintainability concerns

Please explain the selected code in detail.
`

const cmdRefactor = `# Refactor Suggestions

## Overview
Analyze the selected code and suggest refactoring improvements.

## Analysis Criteria

### 1. Code Smells to Look For
- Long methods/functions (>20 lines)
- Deep nesting (>3 levels)
- Duplicate code
- Large classes/modules
- Long parameter lists
- Feature envy (using other object's data extensively)
- Dead code

### 2. Improvement Patterns
- Extract method/function
- Extract class/module
- Introduce parameter object
- Replace conditionals with polymorphism
- Simplify boolean expressions
- Use early returns

### 3. Clean Code Principles
- Single Responsibility Principle
- DRY (Don't Repeat Yourself)
- KISS (Keep It Simple, Stupid)
- YAGNI (You Aren't Gonna Need It)

## Output Format
For each suggestion, provide:
1. What to change and why
2. Before and after code examples
3. Benefits of the change
`

const cmdSecurityAudit = `# Security Audit

## Overview
Perform a comprehensive security review to identify vulnerabilities.

## Audit Checklist

### 1. Authentication & Authorization
- [ ] Authentication is properly implemented
- [ ] Authorization checks on all protected routes
- [ ] Session management is secure
- [ ] Password policies are enforced

### 2. Input Validation
- [ ] All user inputs are validated
- [ ] SQL injection prevention (parameterized queries)
- [ ] XSS prevention (output encoding)
- [ ] Path traversal prevention

### 3. Sensitive Data
- [ ] No hardcoded secrets or API keys
- [ ] Sensitive data encrypted at rest
- [ ] Secure transmission (HTTPS/TLS)
- [ ] Proper logging (no sensitive data logged)

### 4. Dependencies
- [ ] No known vulnerabilities in dependencies
- [ ] Dependencies are up to date
- [ ] Minimal dependency footprint

### 5. Error Handling
- [ ] Errors don't expose sensitive information
- [ ] Proper error logging
- [ ] Graceful failure handling

Please analyze the codebase for security issues and provide:
1. List of vulnerabilities found (severity: Critical/High/Medium/Low)
2. Specific code locations
3. Recommended fixes
`

const cmdCommit = `# Generate Commit Message

## Overview
Generate a well-formatted commit message following conventional commits.

## Format
` + "```" + `
type(scope): subject

body

footer
` + "```" + `

## Types
- ` + "`feat`" + `: New feature
- ` + "`fix`" + `: Bug fix
- ` + "`docs`" + `: Documentation changes
- ` + "`style`" + `: Code style changes (formatting, semicolons, etc.)
- ` + "`refactor`" + `: Code refactoring (no functional changes)
- ` + "`test`" + `: Adding or updating tests
- ` + "`chore`" + `: Maintenance tasks

## Guidelines
- Subject: imperative mood, lowercase, no period, <50 chars
- Body: explain what and why (not how), wrap at 72 chars
- Footer: reference issues, breaking changes

Please analyze the staged changes and generate an appropriate commit message.
`

const cmdCreatePR = `# Create PR Description

## Overview
Generate a comprehensive pull request description based on the changes made.

## Instructions

Analyze the current changes (git diff) and create a PR description with:

### PR Title
A clear, concise title following the format: ` + "`type(scope): description`" + `
- Types: feat, fix, docs, style, refactor, test, chore

### Description Template

` + "```markdown" + `
## Summary
[Brief description of what this PR does]

## Changes
- [Change 1]
- [Change 2]

## Type of Change
- [ ] Bug fix (non-breaking change fixing an issue)
- [ ] New feature (non-breaking change adding functionality)
- [ ] Breaking change
- [ ] Documentation update

## Testing
- [ ] Unit tests added/updated
- [ ] Manual testing performed
- [ ] All tests passing

## Related Issues
Closes #[issue_number]
` + "```" + `

Please generate a complete PR description based on the staged changes.
`

const cmdDocument = `# Generate Documentation

## Overview
Generate comprehensive documentation for the selected code.

## Documentation Types

### 1. Inline Documentation
- Function/method docstrings
- Complex logic comments
- TODO/FIXME annotations

### 2. API Documentation
- Endpoint descriptions
- Request/response formats
- Error codes and handling
- Authentication requirements
- Example requests

### 3. README Content
- Project overview
- Installation instructions
- Usage examples
- Configuration options
- Contributing guidelines

## Format Guidelines
- Use clear, concise language
- Include code examples
- Document parameters and return values
- Note any side effects
- Mention error conditions

Please generate appropriate documentation for the selected code.
`

const cmdOptimize = `# Optimize Performance

## Overview
Analyze the code for performance issues and suggest optimizations.

## Analysis Areas

### 1. Time Complexity
- Algorithm efficiency (Big O)
- Unnecessary iterations
- Redundant calculations
- Opportunities for caching/memoization

### 2. Space Complexity
- Memory usage
- Data structure choices
- Temporary object creation
- Memory leaks

### 3. I/O Operations
- Database query efficiency
- Network request optimization
- File system operations
- Batching opportunities

### 4. Concurrency
- Parallelization opportunities
- Async/await usage
- Race conditions
- Resource contention

## Output Format
For each optimization:
1. Current issue and impact
2. Suggested improvement
3. Before/after code
4. Expected performance gain
`

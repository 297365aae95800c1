package prompt

const promptHeader = `# Business Logic Workflow Analysis

You are analyzing the codebase of **%s** to document its business logic workflows.

## Project Context

- **Project Name**: %s
- **Languages**: %s
- **Entry Points**: %d detected

`

const promptTask = `## Your Task

Analyze this codebase and identify distinct **business logic workflows**. For each workflow:

1. **Identify the workflow** - What business process does it represent?
2. **Find entry points** - API endpoints, event handlers, CLI commands, scheduled jobs
3. **Map components** - Which files, functions, and classes are involved?
4. **Track dependencies**:
   - External APIs called
   - Third-party libraries used
   - Internal services/modules used
5. **Create a flow diagram** - Use Mermaid.js syntax to visualize the flow
6. **Document relationships** - Which workflows trigger or depend on others?

`

const promptOutputFormat = "## Output Format\n\n" +
	"For each workflow, create a markdown file in `.business-logic/workflows/<workflow-name>.md` using this structure:\n\n" +
	"```markdown\n" +
	`# Workflow: [Workflow Name]

## Description
[What this workflow does from a business perspective]

## Déclencheurs
- **Endpoint**: ` + "`[HTTP method] /api/path`" + `
- **Event**: ` + "`[event.name]`" + `
- **CLI**: ` + "`[command]`" + `

## Composants Utilisés

### Fichiers
- ` + "`path/to/file.ext:10-45`" + ` - [What this file does in the workflow]

### APIs Externes
- **Service Name** (` + "`api.example.com/endpoint`" + `) - [Purpose]

### Services Internes
- ` + "`ServiceName`" + ` - [Purpose]

### Librairies Tierces
- ` + "`package-name`" + ` (v1.0.0) - [How it's used]

## Flux d'Exécution

` + "```" + `mermaid
graph TD
    A[Start Point] --> B{Decision}
    B -->|Path 1| C[Action]
    B -->|Path 2| D[Action]
    C --> E[End]
    D --> E
` + "```" + `

## Dépendances Métier

### Déclenche
- ` + "`other-workflow`" + ` - [When/Why]

### Requis par
- ` + "`other-workflow`" + ` - [When/Why]

## Notes & Annotations

_Key points, gotchas, or important business rules_
` + "```\n\n"

const promptGuidelines = `## Analysis Guidelines

1. **Focus on business value** - Not every function is a workflow
2. **Look for these patterns**:
   - API route handlers (REST, GraphQL endpoints)
   - Event listeners/handlers
   - Scheduled tasks (cron jobs)
   - CLI commands
   - Message queue consumers
   - Background jobs

3. **Identify external interactions**:
   - HTTP API calls to external services
   - Database operations (especially complex transactions)
   - File system operations
   - Email/SMS sending
   - Payment processing
   - Authentication/authorization flows

4. **Map data flows** - How does data move through the system?

5. **Note business rules** - Special conditions, validations, or constraints

## Getting Started

Begin by exploring the entry points listed above. For each one, trace the code execution path and identify the business purpose.

Start with the most critical or frequently-used workflows first (authentication, core data operations, payment flows, etc.).

## Questions to Ask

- What problem does this code solve for the end user?
- What happens if this workflow fails?
- Which external systems does this interact with?
- What are the success/failure conditions?
- Are there any business rules or constraints?

Good luck! Create comprehensive, well-documented workflows that will help developers understand the business logic at a glance.
`

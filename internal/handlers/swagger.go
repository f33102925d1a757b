package handlers

// @title Submission Intake API
// @version 1.0
// @description Accepts contact-form submissions and serves them back by id or in bulk.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/Tanmaydeep-Singh/AWS-Case-Study-2
// @contact.email support@submission-intake.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @tag.name submissions
// @tag.description Submission intake and retrieval operations

// @tag.name health
// @tag.description Service health probes

package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
)

// Assignment and welcome email content, carried over from the dashboard's
// original notification templates.

const assignmentSubjectPrefix = "🚀 New Project Assignment: "

func AssignmentSubject(projectName string) string {
	return assignmentSubjectPrefix + projectName
}

const WelcomeSubject = "🎉 Welcome to Nirvix Technology"

type assignmentData struct {
	Member       string
	Project      domain.ProjectSnapshot
	TechStack    string
	DashboardURL string
}

var assignmentHTML = template.Must(template.New("assignment").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Project Assignment</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f8fafc; padding: 30px; border-radius: 0 0 8px 8px; }
    .project-card { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
    .project-title { color: #2563eb; font-size: 24px; font-weight: bold; margin-bottom: 10px; }
    .project-detail { margin: 10px 0; }
    .label { font-weight: bold; color: #374151; }
    .tech-stack { background: #e5e7eb; padding: 8px 12px; border-radius: 4px; display: inline-block; }
    .footer { text-align: center; margin-top: 30px; color: #6b7280; font-size: 14px; }
    .button { display: inline-block; background: #2563eb; color: #ffffff !important; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🚀 New Project Assignment</h1>
      <p>You've been assigned to a new project!</p>
    </div>
    <div class="content">
      <p>Hello <strong>{{.Member}}</strong>,</p>
      <p>You have been assigned to a new project. Here are the details:</p>
      <div class="project-card">
        <div class="project-title">{{.Project.Name}}</div>
        <div class="project-detail"><span class="label">Client:</span> {{.Project.Client}}</div>
        <div class="project-detail"><span class="label">Status:</span> {{.Project.Status}}</div>
        <div class="project-detail"><span class="label">Deadline:</span> {{.Project.Deadline}}</div>
        <div class="project-detail"><span class="label">Tech Stack:</span> <span class="tech-stack">{{.TechStack}}</span></div>
        <div class="project-detail"><span class="label">Description:</span><br>{{.Project.Description}}</div>
      </div>
      <p>Please log into the project management system to view more details and start working on this project.</p>
      <div style="text-align: center;">
        <a href="{{.DashboardURL}}" class="button">View Project Details</a>
      </div>
    </div>
    <div class="footer">
      <p>This is an automated message from Nirvix Project Management System.</p>
      <p>If you have any questions, please contact your project manager.</p>
    </div>
  </div>
</body>
</html>`))

// AssignmentBodies renders the HTML and plain-text variants of the
// assignment email for one recipient.
func AssignmentBodies(member string, p domain.ProjectSnapshot, dashboardURL string) (htmlBody, textBody string, err error) {
	data := assignmentData{
		Member:       member,
		Project:      p,
		TechStack:    strings.Join(p.TechStack, ", "),
		DashboardURL: dashboardURL,
	}

	var sb strings.Builder
	if err := assignmentHTML.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render assignment email: %w", err)
	}

	text := fmt.Sprintf(`NEW PROJECT ASSIGNMENT

Hello %s,

You have been assigned to a new project. Here are the details:

Project: %s
Client: %s
Status: %s
Deadline: %s
Tech Stack: %s

Description:
%s

Please log into the project management system to view more details and start working on this project.

This is an automated message from Nirvix Project Management System.
If you have any questions, please contact your project manager.

Best regards,
Nirvix Team
`, member, p.Name, p.Client, p.Status, p.Deadline, data.TechStack, p.Description)

	return sb.String(), text, nil
}

var welcomeHTML = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Welcome to Nirvix</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #1e293b; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #ffffff; padding: 40px 32px; text-align: center; }
    .header-title { color: #0ea5e9; font-size: 28px; font-weight: 700; }
    .content { padding: 32px; background: #ffffff; }
    .button { display: inline-block; background: #0ea5e9; color: #ffffff !important; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 16px 0; }
    .footer { text-align: center; margin-top: 30px; color: #6b7280; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="header-title">Welcome to Nirvix</div>
    </div>
    <div class="content">
      <p>Hello <strong>{{.Member}}</strong>,</p>
      <p>Welcome aboard! Your account is ready and you now have access to the Nirvix project tracker.</p>
      <div style="text-align: center;">
        <a href="{{.DashboardURL}}" class="button">Open the Dashboard</a>
      </div>
      <p>If you have any questions, reach out to your project manager.</p>
    </div>
    <div class="footer">
      <p>This is an automated message from Nirvix Project Management System.</p>
    </div>
  </div>
</body>
</html>`))

// WelcomeBodies renders the welcome email for a new team member.
func WelcomeBodies(member, dashboardURL string) (htmlBody, textBody string, err error) {
	var sb strings.Builder
	data := struct{ Member, DashboardURL string }{member, dashboardURL}
	if err := welcomeHTML.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render welcome email: %w", err)
	}

	text := fmt.Sprintf(`WELCOME TO NIRVIX

Hello %s,

Welcome aboard! Your account is ready and you now have access to the Nirvix project tracker: %s

If you have any questions, reach out to your project manager.

Best regards,
Nirvix Team
`, member, dashboardURL)

	return sb.String(), text, nil
}

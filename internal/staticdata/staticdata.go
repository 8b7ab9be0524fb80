// Package staticdata holds the site content used when the record store
// runs without a database. Content lives here so it can change without
// touching services or handlers.
package staticdata

import (
	"time"

	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/JemAndrew/JemAndrewWebsite/internal/repository"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dp(year int, month time.Month, day int) *time.Time {
	t := d(year, month, day)
	return &t
}

// Seed returns the full static content set
func Seed() repository.Seed {
	return repository.Seed{
		Profile: &models.Profile{
			ID:       1,
			Name:     "Jem Andrew",
			Title:    "Software Engineer",
			Email:    "andrewjem8@gmail.com",
			Location: "Newcastle upon Tyne, UK",
			Bio: "Software engineer with a background in computational biology and a Master's in " +
				"Computer Science. I focus on backend development, machine learning applications, " +
				"and writing clean, maintainable code.",
			TypingTexts: "Backend Developer, Problem Solver, Machine Learning Enthusiast, Clean Code Advocate",
			GitHubURL:   "https://github.com/JemAndrew",
			LinkedInURL: "https://www.linkedin.com/in/jem-andrew/",
			CVFile:      "jem_andrew_cv.pdf",
		},
		Settings: &models.SiteSettings{
			ID:              1,
			SiteTitle:       "Jem Andrew - Software Engineer",
			SiteDescription: "Software Engineer passionate about backend development, machine learning, and building efficient code.",
			ThemeColor:      "#007bff",
			EnableDarkMode:  true,
		},
		Experience: []models.Experience{
			{
				ID:       1,
				Company:  "Law Firm Client",
				Position: "Freelance AI Consultant",
				Location: "Remote",
				Description: "Developing and maintaining an AI-powered legal document analysis system " +
					"for ongoing commercial litigation, delivering tribunal-ready work products as new " +
					"case materials emerge.",
				StartDate:      d(2025, time.October, 1),
				IsCurrent:      true,
				IsPrimaryFocus: true,
				Skills:         "Python, Anthropic Claude API, RAG Architecture, ChromaDB, Legal Tech, Client Management",
			},
			{
				ID:       2,
				Company:  "BuildChorus.com",
				Position: "Software Engineer",
				Location: "Remote",
				Description: "Developed full-stack features for a construction management SaaS platform: " +
					"backend features, responsive frontend components, feature planning and code reviews.",
				StartDate: d(2025, time.September, 1),
				EndDate:   dp(2025, time.October, 1),
				Skills:    "Django, PostgreSQL, JavaScript, React, Full-Stack Development",
			},
		},
		Education: []models.Education{
			{
				ID:          1,
				Institution: "Newcastle University",
				DegreeType:  models.DegreeMSc,
				Subject:     "Computer Science",
				Grade:       "Merit",
				StartDate:   d(2024, time.September, 1),
				EndDate:     dp(2025, time.August, 1),
				Description: "Comparison of Novel vs Standard CNN Architectures for Automated Skin Cancer " +
					"Detection. Built an FDA-compliant evaluation framework comparing deep learning models " +
					"for dermatological diagnosis.",
				Technologies: "PyTorch, Python, Machine Learning, CNN, Medical AI, TensorFlow, Statistical Validation",
			},
			{
				ID:          2,
				Institution: "Newcastle University",
				DegreeType:  models.DegreeBSc,
				Subject:     "Biology",
				Grade:       "Upper Second-Class Honours (2:1)",
				StartDate:   d(2021, time.September, 1),
				EndDate:     dp(2024, time.May, 1),
				Description: "A Systematic Review of CRISPR Gene Editing in Enhancing Fusarium Head Blight " +
					"Resistance in Wheat and Barley (83%).",
				Technologies: "R, Statistical Analysis, Bioinformatics, AlphaFold, BLAST, Research Methods",
			},
		},
		Projects: []models.Project{
			{
				ID:               1,
				Title:            "Litigation Intelligence Platform",
				ShortDescription: "AI-powered legal document analysis system processing 18,000+ documents in 48 hours.",
				DetailedDescription: "Production-grade legal AI system that analyses large-scale commercial " +
					"litigation using a 4-pass iterative architecture. Triages thousands of documents, extracts " +
					"structured legal intelligence, and generates tribunal-ready work products.",
				Technologies: "Python, Anthropic Claude API, ChromaDB, SQLite, RAG Architecture, BM25 Retrieval",
				Category:     models.CategoryProfessional,
				Status:       models.StatusCompleted,
				Featured:     true,
				CreatedDate:  d(2025, time.October, 1),
			},
			{
				ID:               2,
				Title:            "Cryptocurrency Exchange Platform",
				ShortDescription: "Custom order matching engine with price-time priority algorithm.",
				DetailedDescription: "Cryptocurrency exchange built from scratch focused on stablecoin trading. " +
					"Custom order matching engine with price-time priority, RESTful API for account management " +
					"and trading, React frontend with real-time WebSocket updates.",
				Technologies: "Python, FastAPI, PostgreSQL, Redis, React, WebSocket",
				Category:     models.CategoryPersonal,
				Status:       models.StatusCompleted,
				Featured:     true,
				GitHubURL:    "https://github.com/JemAndrew/crypto-exchange",
				CreatedDate:  d(2024, time.July, 1),
			},
			{
				ID:               3,
				Title:            "Holiday Cluedo PWA",
				ShortDescription: "Progressive Web App version of Cluedo for offline holiday entertainment.",
				DetailedDescription: "PWA version of Cluedo written in vanilla JavaScript, supporting 20+ " +
					"concurrent users. Fisher-Yates shuffle for fair card distribution, service workers for " +
					"offline play.",
				Technologies: "JavaScript, PWA, Service Workers, WebSockets, Local Storage",
				Category:     models.CategoryPersonal,
				Status:       models.StatusCompleted,
				Featured:     true,
				GitHubURL:    "https://github.com/JemAndrew/holiday-cluedo",
				CreatedDate:  d(2023, time.December, 1),
			},
			{
				ID:               4,
				Title:            "Medical AI Diagnostic System",
				ShortDescription: "MSc dissertation comparing CNN architectures for skin cancer detection.",
				DetailedDescription: "Research project comparing novel and standard CNN architectures for " +
					"automated skin cancer detection, with transfer learning, ensemble methods, and clinical " +
					"validation protocols.",
				Technologies: "PyTorch, Python, TensorFlow, CNN, Transfer Learning, Statistical Analysis",
				Category:     models.CategoryAcademic,
				Status:       models.StatusCompleted,
				CreatedDate:  d(2025, time.August, 1),
			},
			{
				ID:               5,
				Title:            "Bike Route Planning Application",
				ShortDescription: "Full-stack cycling route app built with Flask, React and MongoDB.",
				DetailedDescription: "Team project building a cycling route application (scored 85%). REST API " +
					"endpoints for user authentication and route management, built under agile methodology.",
				Technologies: "Python, Flask, React, MongoDB, HERE Maps API",
				Category:     models.CategoryAcademic,
				Status:       models.StatusCompleted,
				GitHubURL:    "https://github.com/JemAndrew/cycle_plan",
				CreatedDate:  d(2024, time.March, 1),
			},
			{
				ID:               6,
				Title:            "Portfolio Website",
				ShortDescription: "Portfolio backend with responsive design and modern UI.",
				DetailedDescription: "This portfolio site, focused on performance with minimal dependencies " +
					"and fast load times.",
				Technologies: "Go, PostgreSQL, JavaScript",
				Category:     models.CategoryPersonal,
				Status:       models.StatusCompleted,
				GitHubURL:    "https://github.com/JemAndrew/portfolio",
				CreatedDate:  d(2024, time.November, 1),
			},
		},
		Skills: []models.Skill{
			{ID: 1, Name: "Python", Category: models.SkillProgramming, Proficiency: 5, YearsExperience: 3, Description: "Backend development, data science, automation"},
			{ID: 2, Name: "JavaScript", Category: models.SkillProgramming, Proficiency: 4, YearsExperience: 2, Description: "Frontend development, PWAs, async programming"},
			{ID: 3, Name: "Java", Category: models.SkillProgramming, Proficiency: 4, YearsExperience: 1, Description: "Object-oriented programming, algorithms"},
			{ID: 4, Name: "SQL", Category: models.SkillProgramming, Proficiency: 4, YearsExperience: 2, Description: "PostgreSQL, query optimisation, database design"},
			{ID: 5, Name: "R", Category: models.SkillProgramming, Proficiency: 3, YearsExperience: 3, Description: "Statistical analysis, data visualisation"},
			{ID: 6, Name: "HTML/CSS", Category: models.SkillProgramming, Proficiency: 5, YearsExperience: 3, Description: "Semantic markup, responsive design, modern CSS"},
			{ID: 7, Name: "Django", Category: models.SkillFramework, Proficiency: 5, YearsExperience: 2, Description: "Full-stack web development, REST APIs"},
			{ID: 8, Name: "Flask", Category: models.SkillFramework, Proficiency: 3, YearsExperience: 1, Description: "Lightweight web applications, APIs"},
			{ID: 9, Name: "React", Category: models.SkillFramework, Proficiency: 3, YearsExperience: 1, Description: "Component-based UI development"},
			{ID: 10, Name: "PyTorch", Category: models.SkillFramework, Proficiency: 3, YearsExperience: 1, Description: "Deep learning, CNN architectures"},
			{ID: 11, Name: "PostgreSQL", Category: models.SkillDatabase, Proficiency: 4, YearsExperience: 2, Description: "Advanced queries, optimisation"},
			{ID: 12, Name: "MongoDB", Category: models.SkillDatabase, Proficiency: 3, YearsExperience: 1, Description: "NoSQL, document storage"},
			{ID: 13, Name: "Git", Category: models.SkillTool, Proficiency: 4, YearsExperience: 3, Description: "Version control, collaboration"},
			{ID: 14, Name: "Docker", Category: models.SkillTool, Proficiency: 3, YearsExperience: 1, Description: "Containerisation, deployment"},
			{ID: 15, Name: "Wireshark", Category: models.SkillSecurity, Proficiency: 3, YearsExperience: 1, Description: "Network analysis, packet inspection"},
			{ID: 16, Name: "nmap", Category: models.SkillSecurity, Proficiency: 3, YearsExperience: 1, Description: "Network scanning, security auditing"},
		},
	}
}

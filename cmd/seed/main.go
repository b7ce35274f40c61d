package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campusai-api/internal/models"
	"github.com/noah-isme/campusai-api/internal/repository"
	"github.com/noah-isme/campusai-api/pkg/config"
	"github.com/noah-isme/campusai-api/pkg/database"
)

// Seeds the database with demo content: one student account, a weekly
// timetable, resources, events, and the counseling roster. Running twice
// is a no-op.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Database); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepository(db)
	if existing, err := users.FindByUsername(ctx, "pulkit"); err != nil {
		log.Fatalf("failed to check seed user: %v", err)
	} else if existing != nil {
		log.Println("database already seeded, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	if err := users.Create(ctx, &models.User{
		Username: "pulkit",
		Password: string(hash),
		FullName: "Pulkit",
		Email:    "pulkit@campus.edu",
		Role:     models.RoleStudent,
	}); err != nil {
		log.Fatalf("failed to create seed user: %v", err)
	}

	db.MustExecContext(ctx, `INSERT INTO classes (name, description, professor, location, color) VALUES
('Data Structures', 'Core algorithms and data organisation', 'Dr. Mehta', 'CS Block 204', '#7C4DFF'),
('Operating Systems', NULL, 'Prof. Rao', 'CS Block 101', '#2196F3'),
('Linear Algebra', NULL, 'Dr. Iyer', 'Math Wing 12', '#FF7043')`)

	db.MustExecContext(ctx, `INSERT INTO schedules (class_id, day_of_week, start_time, end_time) VALUES
(1, 1, '09:00', '10:30'), (1, 3, '09:00', '10:30'),
(2, 1, '11:00', '12:30'), (2, 4, '14:00', '15:30'),
(3, 2, '10:00', '11:30'), (3, 5, '10:00', '11:30')`)

	db.MustExecContext(ctx, `INSERT INTO resources (title, type, url, category, description, file_size) VALUES
('Intro to Algorithms Notes', 'pdf', 'https://cdn.campus.edu/res/algo-notes.pdf', 'pdf', 'Lecture notes covering sorting and graphs', '2.4 MB'),
('OS Concepts Explained', 'video', 'https://video.campus.edu/os-concepts', 'video', 'Scheduling and memory management walkthrough', NULL),
('Linear Algebra Cheat Sheet', 'pdf', 'https://cdn.campus.edu/res/linalg-cheat.pdf', 'pdf', NULL, '800 KB'),
('Study Skills Handbook', 'article', 'https://campus.edu/articles/study-skills', 'article', 'Practical study tips for exam season', NULL)`)

	db.MustExecContext(ctx, `INSERT INTO events (title, description, date, start_time, end_time, location, image_url, is_featured) VALUES
('Tech Fest 2026', 'Annual technology festival with workshops and talks', '2026-09-18', '10:00', '18:00', 'Main Auditorium', 'https://cdn.campus.edu/events/techfest.jpg', true),
('Career Fair', 'Meet recruiters from 40+ companies', '2026-10-02', '09:30', NULL, 'Sports Complex', NULL, false),
('Open Mic Night', NULL, '2026-09-25', '19:00', '22:00', 'Student Center', NULL, false)`)

	db.MustExecContext(ctx, `INSERT INTO event_tags (event_id, tag) VALUES
(1, 'technology'), (1, 'workshops'), (2, 'careers'), (3, 'music')`)

	db.MustExecContext(ctx, `INSERT INTO counselors (name, specialty, bio) VALUES
('Dr. Anjali Sharma', 'academic', 'Fifteen years guiding students through course planning.'),
('Rahul Verma', 'career', 'Former recruiter helping students prepare for placements.'),
('Dr. Kavya Nair', 'mental-health', NULL)`)

	log.Println("database seeded successfully")
}

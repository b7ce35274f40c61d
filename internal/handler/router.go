package handler

import (
	"github.com/gin-gonic/gin"
)

// Routes bundles every handler for registration.
type Routes struct {
	Auth       *AuthHandler
	Classes    *ClassHandler
	Attendance *AttendanceHandler
	Resources  *ResourceHandler
	Events     *EventHandler
	Counseling *CounselingHandler
	Chat       *ChatHandler
}

// Register mounts the REST surface under the prefix. Guarded routes pass
// through requireSession before their handler.
func (rt Routes) Register(r *gin.Engine, prefix string, requireSession gin.HandlerFunc) {
	api := r.Group(prefix)

	api.POST("/register", rt.Auth.Register)
	api.POST("/login", rt.Auth.Login)
	api.POST("/logout", rt.Auth.Logout)
	api.GET("/user", requireSession, rt.Auth.Me)

	api.GET("/classes", rt.Classes.List)
	api.GET("/classes/today", requireSession, rt.Classes.Today)
	api.GET("/classes/day", requireSession, rt.Classes.ByDay)
	api.GET("/schedules", rt.Classes.Schedules)

	api.GET("/attendance/summary", requireSession, rt.Attendance.Summary)
	api.GET("/attendance/export", requireSession, rt.Attendance.Export)
	api.POST("/attendance", requireSession, rt.Attendance.Mark)

	api.GET("/resources", rt.Resources.List)
	api.GET("/resources/categories", rt.Resources.Categories)

	api.GET("/events", rt.Events.List)
	api.GET("/events/featured", rt.Events.Featured)
	api.POST("/events/:id/register", requireSession, rt.Events.Register)

	api.GET("/counselors", rt.Counseling.Counselors)
	api.GET("/counseling/appointments", requireSession, rt.Counseling.MyAppointments)
	api.POST("/counseling/appointments", requireSession, rt.Counseling.Book)

	api.GET("/chat/messages", requireSession, rt.Chat.History)
	api.POST("/chat/messages", requireSession, rt.Chat.Send)
}

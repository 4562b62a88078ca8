package models

import "time"

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"uniqueIndex;size:100"`
	Firstname string
	Lastname  string
	Email     string `gorm:"index"`
	Fullname  string
	Address   string
	Phone1    string
	Phone2    string
	CDate     time.Time `gorm:"autoCreateTime"`
}

type Course struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Fullname  string
	Shortname string `gorm:"index;size:100"`
	// Category 0 marks the hidden system course.
	Category int64     `gorm:"index"`
	IDNumber string    `gorm:"column:idnumber"`
	CDate    time.Time `gorm:"autoCreateTime"`
}

type Enrollment struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	UserID   int64     `gorm:"index:idx_enrollment_user_course,unique"`
	CourseID int64     `gorm:"index:idx_enrollment_user_course,unique"`
	Active   bool      `gorm:"default:true"`
	CDate    time.Time `gorm:"autoCreateTime"`
}

type Grade struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	UserID     int64 `gorm:"index:idx_grade_user_course,unique"`
	CourseID   int64 `gorm:"index:idx_grade_user_course,unique"`
	FinalGrade float64
	CDate      time.Time `gorm:"autoCreateTime"`
}

type CapabilityGrant struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"index:idx_capability_user_cap,unique"`
	Capability string `gorm:"index:idx_capability_user_cap,unique;size:100"`
}

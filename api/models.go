package api

// Timestamps are kept as the strings the backend emits (ISO-8601 local date-times
// without a zone), so they round-trip unchanged.

// Credentials is the login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the account creation request.
type Registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	RealName string `json:"realName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResult is returned by login and register.
type AuthResult struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	RealName string `json:"realName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Token    string `json:"token"`
}

// User is an account with its profile.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	RealName  string `json:"realName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	StudentID string `json:"studentId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Profile is the editable part of a user.
type Profile struct {
	UserID   int64  `json:"userId,omitempty"`
	RealName string `json:"realName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// PasswordChange is the change-password request.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Class is a teaching class.
type Class struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	InviteCode  string `json:"inviteCode,omitempty"`
	Description string `json:"description,omitempty"`
	TeacherID   int64  `json:"teacherId,omitempty"`
	MemberCount int    `json:"memberCount,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ClassInput creates or updates a class.
type ClassInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TeacherID   int64  `json:"teacherId,omitempty"`
}

// Member is a user enrolled in a class.
type Member struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RealName string `json:"realName,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	JoinedAt string `json:"joinedAt,omitempty"`
}

// Course belongs to a class.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ClassID     int64  `json:"classId"`
	ClassName   string `json:"className,omitempty"`
	TeacherID   int64  `json:"teacherId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CourseInput creates or updates a course.
type CourseInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ClassID     int64  `json:"classId,omitempty"`
}

// Assignment belongs to a course.
type Assignment struct {
	ID              int64  `json:"id"`
	CourseID        int64  `json:"courseId"`
	CourseName      string `json:"courseName,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
	SubmissionCount int    `json:"submissionCount,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// AssignmentInput creates or updates an assignment.
type AssignmentInput struct {
	CourseID    int64  `json:"courseId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
}

// Submission is a student's answer to an assignment.
type Submission struct {
	ID               int64    `json:"id"`
	AssignmentID     int64    `json:"assignmentId"`
	AssignmentTitle  string   `json:"assignmentTitle,omitempty"`
	StudentID        int64    `json:"studentId"`
	StudentName      string   `json:"studentName,omitempty"`
	AnswerText       string   `json:"answerText,omitempty"`
	Content          string   `json:"content,omitempty"`
	FilePath         string   `json:"filePath,omitempty"`
	OriginalFileName string   `json:"originalFileName,omitempty"`
	Attachments      []string `json:"attachments,omitempty"`
	Score            *float64 `json:"score,omitempty"`
	Feedback         string   `json:"feedback,omitempty"`
	Status           string   `json:"status,omitempty"`
	SubmittedAt      string   `json:"submittedAt,omitempty"`
	GradedAt         string   `json:"gradedAt,omitempty"`
}

// SubmissionInput creates or updates a submission.
type SubmissionInput struct {
	AssignmentID     int64  `json:"assignmentId,omitempty"`
	StudentID        int64  `json:"studentId,omitempty"`
	AnswerText       string `json:"answerText,omitempty"`
	FilePath         string `json:"filePath,omitempty"`
	OriginalFileName string `json:"originalFileName,omitempty"`
}

// Grade scores a submission.
type Grade struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback,omitempty"`
}

// Enrollment links a student to a class.
type Enrollment struct {
	ID        int64  `json:"id"`
	ClassID   int64  `json:"classId"`
	StudentID int64  `json:"studentId"`
	JoinedAt  string `json:"joinedAt,omitempty"`
}

// Discussion is a class forum thread.
type Discussion struct {
	ID           int64  `json:"id"`
	ClassID      int64  `json:"classId"`
	Title        string `json:"title"`
	Content      string `json:"content,omitempty"`
	AuthorID     int64  `json:"authorId,omitempty"`
	AuthorName   string `json:"authorName,omitempty"`
	IsPinned     bool   `json:"isPinned,omitempty"`
	IsLiked      bool   `json:"isLiked,omitempty"`
	LikeCount    int    `json:"likeCount,omitempty"`
	ViewCount    int    `json:"viewCount,omitempty"`
	CommentCount int    `json:"commentCount,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// DiscussionInput creates or updates a discussion.
type DiscussionInput struct {
	ClassID int64  `json:"classId,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// Comment is a reply in a discussion.
type Comment struct {
	ID           int64  `json:"id"`
	DiscussionID int64  `json:"discussionId"`
	ParentID     int64  `json:"parentId,omitempty"`
	Content      string `json:"content"`
	AuthorID     int64  `json:"authorId,omitempty"`
	AuthorName   string `json:"authorName,omitempty"`
	AuthorRole   string `json:"authorRole,omitempty"`
	IsEdited     bool   `json:"isEdited,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// CommentInput creates or updates a comment.
type CommentInput struct {
	Content  string `json:"content"`
	ParentID int64  `json:"parentId,omitempty"`
}

// CloudFile is a file in class cloud storage.
type CloudFile struct {
	ID               int64  `json:"id"`
	ClassID          int64  `json:"classId"`
	FileName         string `json:"fileName,omitempty"`
	OriginalFileName string `json:"originalFileName,omitempty"`
	FilePath         string `json:"filePath,omitempty"`
	FileSize         int64  `json:"fileSize,omitempty"`
	FileType         string `json:"fileType,omitempty"`
	Description      string `json:"description,omitempty"`
	UploaderID       int64  `json:"uploaderId,omitempty"`
	UploaderName     string `json:"uploaderName,omitempty"`
	UploaderRole     string `json:"uploaderRole,omitempty"`
	DownloadCount    int    `json:"downloadCount,omitempty"`
	IsPublic         bool   `json:"isPublic"`
	FolderID         *int64 `json:"folderId,omitempty"`
	FolderName       string `json:"folderName,omitempty"`
	FolderPath       string `json:"folderPath,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// FileUpdate edits file metadata.
type FileUpdate struct {
	Description string `json:"description,omitempty"`
	IsPublic    *bool  `json:"isPublic,omitempty"`
}

// CloudFolder is a folder in class cloud storage.
type CloudFolder struct {
	ID             int64         `json:"id"`
	ClassID        int64         `json:"classId"`
	Name           string        `json:"name"`
	ParentFolderID *int64        `json:"parentFolderId,omitempty"`
	Path           string        `json:"path,omitempty"`
	CreatorID      int64         `json:"creatorId,omitempty"`
	CreatorName    string        `json:"creatorName,omitempty"`
	SubFolders     []CloudFolder `json:"subFolders,omitempty"`
	Files          []CloudFile   `json:"files,omitempty"`
	FileCount      int           `json:"fileCount,omitempty"`
	FolderCount    int           `json:"folderCount,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty"`
	UpdatedAt      string        `json:"updatedAt,omitempty"`
}

// Notification is a message to the signed-in user.
type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Type      string `json:"type,omitempty"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt,omitempty"`
	ReadAt    string `json:"readAt,omitempty"`
}

// ChatRequest asks the AI assistant a question.
type ChatRequest struct {
	UserID   int64  `json:"userId,omitempty"`
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
	Model    string `json:"model,omitempty"`
}

// ChatResponse is the assistant's answer.
type ChatResponse struct {
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Stats holds statistics whose shape varies by endpoint.
type Stats map[string]any

// Params are optional list filters and paging parameters, sent as the query string.
type Params map[string]string

package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrEmptyRules        = fmt.Errorf("no rules have been found")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
	ErrInsufficientData  = fmt.Errorf("insufficient labeled training data")
	ErrDegenerateLabels  = fmt.Errorf("training labels contain a single class")
	ErrNotTrained        = fmt.Errorf("classifier has not been trained")
	ErrArtifactChecksum  = fmt.Errorf("model artifact checksum mismatch")
	ErrRetrainInFlight   = fmt.Errorf("a retrain is already running")
	ErrReportNotFound    = fmt.Errorf("abuse report not found")
	ErrExampleNotFound   = fmt.Errorf("training example not found")
	ErrModeratorRequired = fmt.Errorf("moderator role required")

	ErrModeratorAlreadyExists = fmt.Errorf("moderator already exists")
	ErrInvalidCredentials     = fmt.Errorf("invalid credentials")
	ErrInvalidPassword        = fmt.Errorf("password does not meet complexity requirements")
	ErrInvalidToken           = fmt.Errorf("invalid or expired token")
	ErrTokenGeneration        = fmt.Errorf("token generation failed")
)

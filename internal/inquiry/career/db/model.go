package careerdb

import "errors"

var ErrCareerNotFound = errors.New("career application not found")

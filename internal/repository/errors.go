package repository

import "errors"

var (
	ErrSeasonNotFound        = errors.New("repository: no schedule stored for season")
	ErrGameNotFound          = errors.New("repository: game not found")
	ErrResultAlreadyRecorded = errors.New("repository: game result already recorded")
)

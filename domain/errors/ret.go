package errors

// The Application return code errors
const (
	RetInvalidArgument      = 2
	RetLayerFilesystemError = 9
	RetLoadConfigError      = 10
	RetCreateDatabaseError  = 11
	RetMigrateDatabaseError = 12
	RetCreateDeckRepoError  = 13
	RetCreateConfigWatcher  = 17
	RetCreateFirstDeckError = 20
	RetGenerateError        = 30
	RetWriteOutputError     = 31
	RetCreateWebServerError = 40
)

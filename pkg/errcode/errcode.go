package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	RemoveFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Store errors
	StoreOpusCreateError
	StoreTermError
	StoreContributorError
	StoreProfileError
	StoreAnalyzeError

	// Records errors
	RecordsFormatError
	RecordsDecodeError
	RecordsEmptyError

	// Verifier errors
	VerifierRequestError
	VerifierResponseError
	CacheOpenError
	CacheQueryError

	// Import errors
	ImportOpusNotFoundError
	ImportOpusLookupError
	ImportCancelledError
	ImportWorkerError

	// CLI errors
	OutputFormatError
	OpusMissingError
)

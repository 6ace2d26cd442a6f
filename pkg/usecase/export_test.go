package usecase

// UnmarshalFileForTest is exported for testing purposes
var UnmarshalFileForTest = unmarshalFile

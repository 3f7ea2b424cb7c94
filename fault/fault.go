// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors

// AuthorizationError - errors for operations restricted to the administrator
type AuthorizationError GenericError

// ExistsError - errors for things that already exist
type ExistsError GenericError

// InvalidError - errors for invalid arguments or records
type InvalidError GenericError

// LengthError - errors for fields that are too long or too short
type LengthError GenericError

// NotFoundError - errors for things that do not exist
type NotFoundError GenericError

// ProcessError - errors for operations that cannot proceed
type ProcessError GenericError

// RecordError - errors for damaged stored records
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ExistsError("already initialised")
	AssetAlreadyRegistered        = ExistsError("asset already registered")
	AssetIdIsRequired             = InvalidError("asset id is required")
	AssetMetadataTooLong          = LengthError("asset metadata too long")
	AssetNameIsRequired           = InvalidError("asset name is required")
	AssetNameTooLong              = LengthError("asset name too long")
	AssetNameTooShort             = LengthError("asset name too short")
	AssetNotFound                 = NotFoundError("asset not found")
	CannotDecodeAccount           = InvalidError("cannot decode account")
	CannotDecodeIdentifier        = InvalidError("cannot decode identifier")
	CannotDecodePrivateKey        = InvalidError("cannot decode private key")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = InvalidError("checksum mismatch")
	ConnectIsRequired             = InvalidError("connect is required")
	CorruptRecord                 = RecordError("corrupt record")
	CryptoFailed                  = ProcessError("crypto failed")
	DataInconsistent              = ProcessError("data inconsistent")
	DatabaseIsNotSet              = ProcessError("database is not set")
	DescriptionIsRequired         = InvalidError("description is required")
	DuplicateAsset                = InvalidError("duplicate asset")
	IdentityIsRequired            = InvalidError("identity is required")
	IdentityNameAlreadyExists     = ExistsError("identity name already exists")
	IdentityNameNotFound          = NotFoundError("identity name not found")
	IncompatibleOptions           = InvalidError("incompatible options")
	InstanceAlreadyDeployed       = ExistsError("instance already deployed")
	InstanceNotFound              = NotFoundError("instance not found")
	InsufficientFunds             = ProcessError("insufficient funds")
	InvalidAdministrator          = InvalidError("invalid administrator")
	InvalidChain                  = InvalidError("invalid chain")
	InvalidCount                  = InvalidError("invalid count")
	InvalidCursor                 = InvalidError("invalid cursor")
	InvalidIpAddress              = InvalidError("invalid IP Address")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidOwnerOrRegistrant      = InvalidError("invalid owner or registrant")
	InvalidPasswordLength         = InvalidError("invalid password length")
	InvalidPortNumber             = InvalidError("invalid port number")
	InvalidPrivateKey             = InvalidError("invalid private key")
	InvalidPublicKey              = InvalidError("invalid public key")
	InvalidSignature              = InvalidError("invalid signature")
	InvalidStructure              = InvalidError("invalid structure")
	InvalidSupply                 = InvalidError("invalid supply")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MetadataIsNotMap              = InvalidError("metadata is not map")
	MissingParameters             = ProcessError("missing parameters")
	NoTrancheSelected             = InvalidError("no tranche selected")
	NotAdministrator              = AuthorizationError("not administrator")
	NotAssetId                    = InvalidError("not asset id")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NothingToRecover              = ProcessError("nothing to recover")
	NotInitialised                = ProcessError("not initialised")
	NotInstanceId                 = InvalidError("not instance id")
	NotOfferingPack               = InvalidError("not offering pack")
	NotPrivateKey                 = InvalidError("not private key")
	NotPublicKey                  = InvalidError("not public key")
	PasswordMismatch              = InvalidError("password mismatch")
	PrivateKeyIsRequired          = InvalidError("private key is required")
	RateLimiting                  = ProcessError("rate limiting")
	RecordNotFound                = NotFoundError("record not found")
	SignatureTooLong              = LengthError("signature too long")
	TemplateNotFound              = NotFoundError("template not found")
	TransactionInUse              = ProcessError("transaction in use")
	WindowEndsTooFarAhead         = InvalidError("window ends too far ahead")
	WindowInverted                = InvalidError("window inverted")
	WindowNotInFuture             = InvalidError("window not in future")
	WrongNetworkForPrivateKey     = InvalidError("wrong network for private key")
	WrongNetworkForPublicKey      = InvalidError("wrong network for public key")
	WrongPassword                 = InvalidError("wrong password")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods

// Error - the error interface method for authorization errors
func (e AuthorizationError) Error() string { return string(e) }

// Error - the error interface method for exists errors
func (e ExistsError) Error() string { return string(e) }

// Error - the error interface method for invalid errors
func (e InvalidError) Error() string { return string(e) }

// Error - the error interface method for length errors
func (e LengthError) Error() string { return string(e) }

// Error - the error interface method for not found errors
func (e NotFoundError) Error() string { return string(e) }

// Error - the error interface method for process errors
func (e ProcessError) Error() string { return string(e) }

// Error - the error interface method for record errors
func (e RecordError) Error() string { return string(e) }

// determine the class of an error

// IsErrAuthorization - is the error an authorization error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }

// IsErrExists - is the error an exists error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - is the error an invalid error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - is the error a length error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - is the error a not found error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - is the error a process error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - is the error a record error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }

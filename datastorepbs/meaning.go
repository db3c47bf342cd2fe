package datastorepbs

// Property meanings carried by the modern schemas. The values below 20
// mirror the legacy meaning enum; 20 and up exist only to tag modern
// values whose legacy rendering loses type information (predefined
// entities, zlib blobs, points stored without a legacy meaning).
const (
	MeaningAtomCategory          int32 = 1
	MeaningURL                   int32 = 2
	MeaningAtomTitle             int32 = 3
	MeaningAtomContent           int32 = 4
	MeaningAtomSummary           int32 = 5
	MeaningAtomAuthor            int32 = 6
	MeaningNonRFC3339Timestamp   int32 = 7
	MeaningGDEmail               int32 = 8
	MeaningGeoRSSPoint           int32 = 9
	MeaningGDIM                  int32 = 10
	MeaningGDPhoneNumber         int32 = 11
	MeaningGDPostalAddress       int32 = 12
	MeaningPercent               int32 = 13
	MeaningText                  int32 = 15
	MeaningByteString            int32 = 16
	MeaningBlobKey               int32 = 17
	MeaningIndexOnly             int32 = 18
	MeaningPredefinedEntityUser  int32 = 20
	MeaningPredefinedEntityPoint int32 = 21
	MeaningZlib                  int32 = 22
	MeaningPointWithoutV3Meaning int32 = 23
	MeaningEmptyList             int32 = 24
)

// URIMeaningZlib marks a legacy blob property whose bytes are
// zlib-compressed.
const URIMeaningZlib = "ZLIB"

// Property names of the predefined point entity.
const (
	PropertyNameX = "x"
	PropertyNameY = "y"
)

// Property names of the predefined user entity.
const (
	PropertyNameEmail             = "email"
	PropertyNameAuthDomain        = "auth_domain"
	PropertyNameUserID            = "user_id"
	PropertyNameInternalID        = "internal_id"
	PropertyNameFederatedIdentity = "federated_identity"
	PropertyNameFederatedProvider = "federated_provider"
)

// PropertyNameKey is the pseudo-property that refers to an entity's key.
const PropertyNameKey = "__key__"

// Timestamps outside these bounds cannot be expressed as RFC 3339 strings
// and stay integers when converted to the modern schema.
const (
	RFC3339MinMicrosecondsInclusive = -62135596800 * 1000 * 1000
	RFC3339MaxMicrosecondsInclusive = 253402300799*1000*1000 + 999999
)

func isInRFC3339Bounds(microseconds int64) bool {
	return RFC3339MinMicrosecondsInclusive <= microseconds &&
		microseconds <= RFC3339MaxMicrosecondsInclusive
}

package upnp

var (
	SortSpeakers       = sortSpeakers
	ParseTrackMetadata = parseTrackMetadata
	UniqueAddrs        = uniqueAddrs
)

type TrackMetadata = didlItem

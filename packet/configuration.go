package packet

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// @gen:r,w
// @packet:clientbound,configuration,0x02
type ConfigDisconnect struct {
	Reason TextComponent `field:"TextComponent"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x03
type FinishConfiguration struct{}

// @gen:r,w
// @packet:clientbound,configuration,0x05
type Ping struct {
	ID int32 `field:"Int"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x06
type ResetChat struct{}

// RegistryEntry is one entry of a synchronised registry. Entries that carry
// NBT data are rejected with ErrUnsupportedNBT.
type RegistryEntry struct {
	ID string
}

func writeRegistryEntry(w io.Writer, v RegistryEntry) (err error) {
	if err = WriteIdentifier(w, v.ID); err != nil {
		return
	}
	err = WriteBoolean(w, false)
	return
}

func readRegistryEntry(r Reader) (v RegistryEntry, err error) {
	if v.ID, err = ReadIdentifier(r); err != nil {
		return
	}
	hasData, err := ReadBoolean(r)
	if err != nil {
		return
	}
	if hasData {
		return RegistryEntry{}, fmt.Errorf("%w: data of registry entry %s", ErrUnsupportedNBT, v.ID)
	}
	return
}

// @gen:r,w
// @packet:clientbound,configuration,0x07
type RegistryData struct {
	RegistryID string          `field:"Identifier"`
	Entries    []RegistryEntry `field:"PrefixedArray" write:"writeRegistryEntry" read:"readRegistryEntry"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x08
type RemoveResourcePack struct {
	UUID Optional[uuid.UUID] `field:"Optional" inner:"UUID"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x09
type AddResourcePack struct {
	UUID   uuid.UUID               `field:"UUID"`
	URL    string                  `field:"String"`
	Hash   string                  `field:"String"` // hex SHA-1
	Forced bool                    `field:"Boolean"`
	Prompt Optional[TextComponent] `field:"Optional" inner:"TextComponent"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x0A
type StoreCookie struct {
	Key     string `field:"Identifier"`
	Payload []byte `field:"ByteArray"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x0B
type Transfer struct {
	Host string `field:"String"`
	Port int32  `field:"VarInt"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x0C
type FeatureFlags struct {
	Flags []string `field:"PrefixedArray" inner:"Identifier"`
}

type Tag struct {
	Name    string
	Entries []int32
}

type TagRegistry struct {
	Registry string
	Tags     []Tag
}

func readTagEntry(r Reader) (int32, error) {
	return ReadVarInt(r)
}

func writeTag(w io.Writer, v Tag) (err error) {
	if err = WriteIdentifier(w, v.Name); err != nil {
		return
	}
	err = WritePrefixedArray(w, v.Entries, WriteVarInt)
	return
}

func readTag(r Reader) (v Tag, err error) {
	if v.Name, err = ReadIdentifier(r); err != nil {
		return
	}
	v.Entries, err = ReadPrefixedArray(r, readTagEntry)
	return
}

func writeTagRegistry(w io.Writer, v TagRegistry) (err error) {
	if err = WriteIdentifier(w, v.Registry); err != nil {
		return
	}
	err = WritePrefixedArray(w, v.Tags, writeTag)
	return
}

func readTagRegistry(r Reader) (v TagRegistry, err error) {
	if v.Registry, err = ReadIdentifier(r); err != nil {
		return
	}
	v.Tags, err = ReadPrefixedArray(r, readTag)
	return
}

// @gen:r,w
// @packet:clientbound,configuration,0x0D
type UpdateTags struct {
	Registries []TagRegistry `field:"PrefixedArray" write:"writeTagRegistry" read:"readTagRegistry"`
}

type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

func writeKnownPack(w io.Writer, v KnownPack) (err error) {
	if err = WriteString(w, v.Namespace); err != nil {
		return
	}
	if err = WriteString(w, v.ID); err != nil {
		return
	}
	err = WriteString(w, v.Version)
	return
}

func readKnownPack(r Reader) (v KnownPack, err error) {
	if v.Namespace, err = ReadString(r); err != nil {
		return
	}
	if v.ID, err = ReadString(r); err != nil {
		return
	}
	v.Version, err = ReadString(r)
	return
}

// KnownPacks is sent by the server to list the data packs it would like to
// skip sending, and echoed by the client with the subset it has.
//
// @gen:r,w
// @packet:clientbound,configuration,0x0E
// @packet:serverbound,configuration,0x07
type KnownPacks struct {
	Packs []KnownPack `field:"PrefixedArray" write:"writeKnownPack" read:"readKnownPack"`
}

// Built-in server link labels.
const (
	LinkBugReport = iota
	LinkCommunityGuidelines
	LinkSupport
	LinkStatus
	LinkFeedback
	LinkCommunity
	LinkWebsite
	LinkForums
	LinkNews
	LinkAnnouncements
)

// ServerLink is labelled either by a built-in label (Builtin set, Label
// unused) or by free text.
type ServerLink struct {
	Builtin      bool
	BuiltinLabel int32
	Label        TextComponent
	URL          string
}

func writeServerLink(w io.Writer, v ServerLink) (err error) {
	if err = WriteBoolean(w, v.Builtin); err != nil {
		return
	}
	if v.Builtin {
		err = WriteVarInt(w, v.BuiltinLabel)
	} else {
		err = WriteTextComponent(w, v.Label)
	}
	if err != nil {
		return
	}
	err = WriteString(w, v.URL)
	return
}

func readServerLink(r Reader) (v ServerLink, err error) {
	if v.Builtin, err = ReadBoolean(r); err != nil {
		return
	}
	if v.Builtin {
		v.BuiltinLabel, err = ReadVarInt(r)
	} else {
		v.Label, err = ReadTextComponent(r)
	}
	if err != nil {
		return
	}
	v.URL, err = ReadString(r)
	return
}

// @gen:r,w
// @packet:clientbound,configuration,0x10
type ServerLinks struct {
	Links []ServerLink `field:"PrefixedArray" write:"writeServerLink" read:"readServerLink"`
}

// Chat modes and main hands reported in ClientInformation.
const (
	ChatEnabled = iota
	ChatCommandsOnly
	ChatHidden
)

const (
	MainHandLeft = iota
	MainHandRight
)

// @gen:r,w
// @packet:serverbound,configuration,0x00
type ClientInformation struct {
	Locale              string `field:"String"`
	ViewDistance        byte   `field:"Byte"`
	ChatMode            int32  `field:"VarInt"`
	ChatColors          bool   `field:"Boolean"`
	SkinParts           byte   `field:"Byte"`
	MainHand            int32  `field:"VarInt"`
	TextFiltering       bool   `field:"Boolean"`
	AllowServerListings bool   `field:"Boolean"`
}

// @gen:r,w
// @packet:serverbound,configuration,0x03
type AcknowledgeFinishConfiguration struct{}

// @gen:r,w
// @packet:serverbound,configuration,0x05
type Pong struct {
	ID int32 `field:"Int"`
}

// Resource pack results.
const (
	PackLoaded = iota
	PackDeclined
	PackFailedDownload
	PackAccepted
	PackDownloaded
	PackInvalidURL
	PackFailedReload
	PackDiscarded
)

// @gen:r,w
// @packet:serverbound,configuration,0x06
type ResourcePackResponse struct {
	UUID   uuid.UUID `field:"UUID"`
	Result int32     `field:"VarInt"`
}

package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aleister1102/gamewatch/internal/errorwrapper"
	"github.com/aleister1102/gamewatch/internal/snapshot"
)

// furniCatalog mirrors the upstream furnidata JSON layout: room and wall item
// sections, each holding a flat furnitype array.
type furniCatalog struct {
	RoomItemTypes furniTypeList `json:"roomitemtypes"`
	WallItemTypes furniTypeList `json:"wallitemtypes"`
}

type furniTypeList struct {
	FurniType []snapshot.Entry `json:"furnitype"`
}

// ParseFurniCatalog converts the raw furnidata payload into a keyed Document.
// Items are keyed by section and classname so the diff survives reordering of
// the upstream arrays. A payload that is not JSON, or that carries neither a
// room nor a wall section, is rejected so a bad fetch can never replace a good
// snapshot.
func ParseFurniCatalog(raw []byte) (snapshot.Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errorwrapper.NewError("furnidata payload is empty")
	}

	var catalog furniCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, errorwrapper.WrapError(err, "furnidata payload is not valid JSON")
	}

	if len(catalog.RoomItemTypes.FurniType) == 0 && len(catalog.WallItemTypes.FurniType) == 0 {
		return nil, errorwrapper.NewError("furnidata payload has no roomitemtypes or wallitemtypes entries")
	}

	doc := make(snapshot.Document, len(catalog.RoomItemTypes.FurniType)+len(catalog.WallItemTypes.FurniType))
	addFurniTypes(doc, "room", catalog.RoomItemTypes.FurniType)
	addFurniTypes(doc, "wall", catalog.WallItemTypes.FurniType)
	return doc, nil
}

// addFurniTypes keys each item by section/classname, falling back to the
// numeric id for the rare entries without a classname.
func addFurniTypes(doc snapshot.Document, section string, items []snapshot.Entry) {
	for _, item := range items {
		key := furniKey(section, item)
		doc[key] = item
	}
}

func furniKey(section string, item snapshot.Entry) string {
	if classname, ok := item["classname"].(string); ok && classname != "" {
		return section + "/" + classname
	}
	return fmt.Sprintf("%s/id:%v", section, item["id"])
}

// EncodeCatalogSnapshot pretty-prints the raw catalog payload for persistence,
// preserving upstream field order so version control diffs stay readable.
func EncodeCatalogSnapshot(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to indent catalog snapshot")
	}
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

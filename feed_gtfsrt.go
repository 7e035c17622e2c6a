package main

import (
	"fmt"
	"time"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

const gtfsRealtimeVersion = "2.0"

// feedVehicle is what a GTFS-RT consumer sees of one twin.
type feedVehicle struct {
	ID    string
	Label string
	Lat   float64
	Lon   float64
}

// encodeFleetFeed renders the batch as a full-dataset GTFS-realtime
// VehiclePositions message. GTFS-RT timestamps are unsigned POSIX seconds.
func encodeFleetFeed(fleet []VehicleRecord, at time.Time) ([]byte, error) {
	if at.Unix() < 0 {
		return nil, fmt.Errorf("feed time %s is before the unix epoch", at.UTC().Format(time.RFC3339))
	}
	ts := uint64(at.Unix())
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String(gtfsRealtimeVersion),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(ts),
		},
		Entity: make([]*gtfs.FeedEntity, 0, len(fleet)),
	}
	for i, rec := range fleet {
		feed.Entity = append(feed.Entity, twinEntity(i, rec, ts))
	}
	b, err := proto.Marshal(feed)
	if err != nil {
		return nil, fmt.Errorf("marshal gtfs-rt feed: %w", err)
	}
	return b, nil
}

// twinEntity keys the entity by batch index too: identifiers can repeat
// within a batch, entity ids must not.
func twinEntity(i int, rec VehicleRecord, ts uint64) *gtfs.FeedEntity {
	return &gtfs.FeedEntity{
		Id: proto.String(fmt.Sprintf("%d-%s", i, rec.Identifier)),
		Vehicle: &gtfs.VehiclePosition{
			Vehicle: &gtfs.VehicleDescriptor{
				Id:    proto.String(rec.Identifier),
				Label: proto.String(rec.Label),
			},
			Position: &gtfs.Position{
				Latitude:  proto.Float32(float32(rec.Location.Latitude)),
				Longitude: proto.Float32(float32(rec.Location.Longitude)),
			},
			Timestamp: proto.Uint64(ts),
		},
	}
}

// twinFromEntity is the inverse of twinEntity. Entities without a vehicle id
// or a position are not twins and are reported as absent.
func twinFromEntity(ent *gtfs.FeedEntity) (feedVehicle, bool) {
	desc := ent.GetVehicle().GetVehicle()
	pos := ent.GetVehicle().GetPosition()
	if desc.GetId() == "" || pos == nil {
		return feedVehicle{}, false
	}
	return feedVehicle{
		ID:    desc.GetId(),
		Label: desc.GetLabel(),
		Lat:   float64(pos.GetLatitude()),
		Lon:   float64(pos.GetLongitude()),
	}, true
}

func decodeFleetFeed(body []byte) ([]feedVehicle, error) {
	var feed gtfs.FeedMessage
	if err := proto.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("unmarshal gtfs-rt feed: %w", err)
	}
	vehicles := make([]feedVehicle, 0, len(feed.GetEntity()))
	for _, ent := range feed.GetEntity() {
		if v, ok := twinFromEntity(ent); ok {
			vehicles = append(vehicles, v)
		}
	}
	return vehicles, nil
}

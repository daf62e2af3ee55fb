// Package publish distributes resolved assignments over NATS JetStream KV.
//
// Every draw gets its own bucket ("<prefix>-<drawID>") holding one record per
// giver, so each participant can look up their own recipient without seeing
// anybody else's. A "meta" key records the participant count and an
// order-independent fingerprint of the assignment for auditing.
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	pub := publish.NewKVPublisher(js, publish.DefaultConfig())
//
//	if err := pub.Publish(ctx, "office-2026", assignment); err != nil {
//	    return err
//	}
//
//	rec, err := pub.Lookup(ctx, "office-2026", "Sheldon")
//	fmt.Println(rec.Recipient)
package publish

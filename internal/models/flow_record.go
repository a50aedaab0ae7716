package models

// FlowRecord is one dataset row restricted to the allowlisted columns.
type FlowRecord struct {
	Line          int // 1-based line in the dataset file
	ProtocolName  string
	Timestamp     string
	DestinationIP string
	FwdPackets    int64
	BwdPackets    int64
	FwdBytes      int64
	BwdBytes      int64
}

// DerivedFlow is a FlowRecord with its timestamp bucketed and counters totalled.
type DerivedFlow struct {
	Bucket        string
	ProtocolName  string
	DestinationIP string
	TotalPackets  int64
	TotalBytes    int64
}

func (f *DerivedFlow) Key() AggregateKey {
	return AggregateKey{
		Bucket:        f.Bucket,
		ProtocolName:  f.ProtocolName,
		DestinationIP: f.DestinationIP,
	}
}

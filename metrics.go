/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import "github.com/prometheus/client_golang/prometheus"

// Prometheus collectors for the codec. None of these are registered with a
// registry automatically; embedders call prometheus.MustRegister on the
// ones they care about.
var (
	MessagesExportedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_messages_exported_total",
		Help: "Total number of IPFIX messages finalized by MessageBuffer.ToBytes.",
	})
	MessagesDecodedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_messages_decoded_total",
		Help: "Total number of IPFIX messages successfully parsed by FromBytes/ReadMessage.",
	})
	RecordsExportedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_records_exported_total",
		Help: "Total number of data records appended via MessageBuffer.ExportRecord.",
	})
	SetsDecodedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ipfix_sets_decoded_total",
		Help: "Total number of template sets applied and data sets decoded from received messages, by kind.",
	}, []string{"kind"})
	EndOfMessageTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_end_of_message_total",
		Help: "Total number of AddTemplate, DeleteTemplate and ExportRecord calls rolled back because the write would exceed MTU.",
	})
	TemplateWithdrawalsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_template_withdrawals_total",
		Help: "Total number of template withdrawal records emitted by DeleteTemplate or applied while decoding.",
	})
	MalformedMessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_malformed_messages_total",
		Help: "Total number of messages rejected as malformed by FromBytes/ReadMessage.",
	})
)

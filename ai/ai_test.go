package ai_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/mock/gomock"

	"github.com/RakshithaNagaraju74/MedWell/ai"
	aiTest "github.com/RakshithaNagaraju74/MedWell/ai/test"
)

func completionResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

var _ = Describe("Client", func() {
	var ctrl *gomock.Controller
	var api *aiTest.MockCompletionAPI
	var client ai.Client

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		api = aiTest.NewMockCompletionAPI(ctrl)
		client = ai.NewClient(api)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("IdentifyConditions", func() {
		It("sends a single user prompt enumerating the symptoms", func() {
			var captured openai.ChatCompletionRequest
			api.EXPECT().
				CreateChatCompletion(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
					captured = req
					return completionResponse("possible conditions"), nil
				})

			result, err := client.IdentifyConditions(context.Background(), []string{"headache", "fever"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal("possible conditions"))

			Expect(captured.Model).To(Equal(openai.GPT3Dot5Turbo))
			Expect(captured.Temperature).To(BeNumerically("~", 0.7, 0.001))
			Expect(captured.MaxTokens).To(Equal(500))
			Expect(captured.Messages).To(HaveLen(1))
			Expect(captured.Messages[0].Role).To(Equal(openai.ChatMessageRoleUser))
			Expect(captured.Messages[0].Content).To(ContainSubstring("headache, fever"))
			Expect(captured.Messages[0].Content).To(ContainSubstring("consult a doctor"))
		})

		It("falls back to a fixed string when the vendor returns no choices", func() {
			api.EXPECT().
				CreateChatCompletion(gomock.Any(), gomock.Any()).
				Return(openai.ChatCompletionResponse{}, nil)

			result, err := client.IdentifyConditions(context.Background(), []string{"headache"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeEmpty())
		})

		It("falls back to a fixed string when the completion is blank", func() {
			api.EXPECT().
				CreateChatCompletion(gomock.Any(), gomock.Any()).
				Return(completionResponse("   "), nil)

			result, err := client.IdentifyConditions(context.Background(), []string{"headache"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeEmpty())
		})

		It("surfaces vendor failures with the underlying message", func() {
			api.EXPECT().
				CreateChatCompletion(gomock.Any(), gomock.Any()).
				Return(openai.ChatCompletionResponse{}, errors.New("rate limited"))

			_, err := client.IdentifyConditions(context.Background(), []string{"headache"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("rate limited"))
		})
	})

	Describe("Chat", func() {
		It("prepends the system instruction and appends history before the new message", func() {
			var captured openai.ChatCompletionRequest
			api.EXPECT().
				CreateChatCompletion(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
					captured = req
					return completionResponse("hello"), nil
				})

			history := []ai.ChatMessage{
				{Role: "user", Content: "first question"},
				{Role: "assistant", Content: "first answer"},
			}
			response, err := client.Chat(context.Background(), "second question", history)
			Expect(err).ToNot(HaveOccurred())
			Expect(response).To(Equal("hello"))

			Expect(captured.MaxTokens).To(Equal(300))
			Expect(captured.Messages).To(HaveLen(4))
			Expect(captured.Messages[0].Role).To(Equal(openai.ChatMessageRoleSystem))
			Expect(captured.Messages[0].Content).To(ContainSubstring("consult a doctor"))
			Expect(captured.Messages[1].Content).To(Equal("first question"))
			Expect(captured.Messages[2].Content).To(Equal("first answer"))
			Expect(captured.Messages[3].Role).To(Equal(openai.ChatMessageRoleUser))
			Expect(captured.Messages[3].Content).To(Equal("second question"))
		})

		It("treats nil history the same as an empty one", func() {
			var withNil, withEmpty openai.ChatCompletionRequest
			capture := func(target *openai.ChatCompletionRequest) func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
				return func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
					*target = req
					return completionResponse("hello"), nil
				}
			}

			api.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).DoAndReturn(capture(&withNil))
			_, err := client.Chat(context.Background(), "question", nil)
			Expect(err).ToNot(HaveOccurred())

			api.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).DoAndReturn(capture(&withEmpty))
			_, err = client.Chat(context.Background(), "question", []ai.ChatMessage{})
			Expect(err).ToNot(HaveOccurred())

			Expect(withNil.Messages).To(Equal(withEmpty.Messages))
		})
	})
})

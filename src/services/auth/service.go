package auth

import (
	DB "Backend-QuestForge/src/database"
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/utils"
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates an account with a bcrypt-hashed password. Emails are
// stored lowercased and must be unique.
func RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := DB.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, utils.Invalid("email already registered")
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: string(hash),
		Name:     req.Name,
	}

	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// AuthenticateUser checks credentials and returns the account without its
// password hash.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, utils.Invalid("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, utils.Invalid("invalid email or password")
	}

	dbUser.Password = ""
	return &dbUser, nil
}

// GetUserByID loads an account by id, without its password hash.
func GetUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}
